package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"kenyareal/internal/auth"
	"kenyareal/internal/cache"
	"kenyareal/internal/config"
	"kenyareal/internal/db"
	"kenyareal/internal/logging"
	"kenyareal/internal/repository"
	"kenyareal/internal/service"
)

// seed repairs the persisted account list, or with -reset replaces it with the
// demo accounts and ends the active session.
func main() {
	reset := flag.Bool("reset", false, "replace the account list with the seed accounts")
	list := flag.Bool("list", false, "print the accounts after seeding")
	flag.Parse()

	if err := run(*reset, *list); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(reset, list bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.StoreDriver == config.StoreMemory || cfg.StoreDriver == "" {
		log.Warnw("memory store selected; seeding has no lasting effect")
	}

	ctx := context.Background()
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	store, closeStore, err := db.OpenDocumentStore(ctx, cfg, cacheClient, log.Named("store"), false)
	if err != nil {
		return fmt.Errorf("document store: %w", err)
	}
	defer func() { _ = closeStore() }()

	credentials, err := auth.NewCredentials(cfg.PasswordHashing)
	if err != nil {
		return err
	}

	repo := repository.NewAccountRepository(store)
	sessions := service.NewSessionService(repo, service.SessionOptions{
		Credentials: credentials,
		Logger:      log.Named("session"),
	})
	accounts := service.NewAccountService(repo, sessions)

	if reset {
		n, err := accounts.ResetAccounts(ctx)
		if err != nil {
			return err
		}
		log.Infow("accounts reset", "count", n)
	} else if err := sessions.Init(ctx); err != nil {
		return fmt.Errorf("repair accounts: %w", err)
	}

	if !list {
		return nil
	}
	all, err := accounts.ListAccounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range all {
		fmt.Printf("%s\t%s\t%s\t%s\n", a.ID, a.Role, a.Email, a.Name)
	}
	return nil
}
