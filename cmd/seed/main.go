// Command seed loads demo data into an empty database: a handful of users
// with debate topics and opening arguments. Re-running is a no-op for users
// that already exist.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"justdebate.online/backend/internal/config"
	"justdebate.online/backend/internal/domain"
	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/pkg/logger"
	"justdebate.online/backend/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("seeding demo data")

	users := repository.NewUserRepository(pool)
	topics := repository.NewTopicRepository(pool)
	arguments := repository.NewArgumentRepository(pool)

	for _, d := range demoDebaters() {
		user, err := users.Create(ctx, d.user)
		if err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				logger.Info("user already seeded, skipping", zap.String("email", d.user.Email))
				continue
			}
			return fmt.Errorf("seed user %s: %w", d.user.Email, err)
		}

		for _, t := range d.topics {
			topic, err := topics.Create(ctx, repository.CreateTopicParams{
				Title:       t.title,
				Description: t.description,
				AuthorID:    user.ID,
				Tags:        t.tags,
			})
			if err != nil {
				return fmt.Errorf("seed topic %q: %w", t.title, err)
			}

			for _, a := range t.arguments {
				if _, err := arguments.Create(ctx, repository.CreateArgumentParams{
					TopicID:  topic.ID,
					AuthorID: user.ID,
					Content:  a.content,
					Type:     a.polarity,
				}); err != nil {
					return fmt.Errorf("seed argument on %q: %w", t.title, err)
				}
			}

			logger.Info("seeded topic",
				zap.String("title", t.title),
				zap.Int("arguments", len(t.arguments)),
			)
		}
	}

	logger.Info("demo data seeding completed")
	return nil
}

type demoArgument struct {
	content  string
	polarity domain.ArgumentType
}

type demoTopic struct {
	title       string
	description string
	tags        []string
	arguments   []demoArgument
}

type demoDebater struct {
	user   repository.CreateUserParams
	topics []demoTopic
}

func demoDebaters() []demoDebater {
	return []demoDebater{
		{
			user: repository.CreateUserParams{
				GoogleID: "demo-google-alice",
				Email:    "alice@demo.justdebate.online",
				Name:     "Alice Demo",
			},
			topics: []demoTopic{
				{
					title:       "Remote work should be the default for software teams",
					description: "Five years after the big remote experiment, is the office obsolete for engineering work, or did we lose something that mattered?",
					tags:        []string{"work", "technology"},
					arguments: []demoArgument{
						{content: "Asynchronous work widens the hiring pool to the whole planet and measurably cuts attrition.", polarity: domain.ArgumentPro},
						{content: "Juniors learn by overhearing; remote teams quietly stop producing seniors.", polarity: domain.ArgumentCon},
					},
				},
				{
					title:       "Social media platforms should verify the age of all users",
					description: "Several countries are introducing mandatory age verification. Protection of minors, or a privacy disaster in the making?",
					tags:        []string{"society", "privacy"},
					arguments: []demoArgument{
						{content: "Every workable verification scheme ends with an identity database linked to browsing history.", polarity: domain.ArgumentCon},
					},
				},
			},
		},
		{
			user: repository.CreateUserParams{
				GoogleID: "demo-google-bruno",
				Email:    "bruno@demo.justdebate.online",
				Name:     "Bruno Demo",
			},
			topics: []demoTopic{
				{
					title:       "Nuclear power is essential for reaching climate goals",
					description: "Can renewables alone carry the grid, or is dismissing nuclear an ideological luxury we cannot afford?",
					tags:        []string{"climate", "energy"},
					arguments: []demoArgument{
						{content: "No industrial country has decarbonized its grid without either nuclear or exceptional hydro resources.", polarity: domain.ArgumentPro},
						{content: "New reactors take fifteen years to build; the money buys more decarbonization in storage and wind today.", polarity: domain.ArgumentCon},
					},
				},
			},
		},
	}
}
