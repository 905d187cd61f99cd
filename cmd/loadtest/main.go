package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Danconnolly/minactor/core/actor"
	"github.com/Danconnolly/minactor/core/keyed"
)

// === Config ===

var (
	logLevel    = slog.LevelInfo
	N           = getEnvInt("N", 1_000_000)
	producers   = getEnvInt("P", 8)
	numActors   = getEnvInt("ACTORS", 16)
	mailboxSize = getEnvInt("MAILBOX", actor.DefaultMailboxSize)
	verbose     = getEnvBool("VERBOSE", false)
)

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	return v == "1" || strings.ToLower(v) == "true"
}

func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, fmt.Sprintf("%d", fallback)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// === Actor ===

type (
	add      struct{ n int }
	getTotal struct{}
)

type summer struct {
	actor.Base[add, getTotal, int]
	total int
}

func (s *summer) HandleSends(hc actor.HandlerCtx, msg add) actor.Control {
	s.total += msg.n
	return actor.Ok()
}

func (s *summer) HandleCalls(hc actor.HandlerCtx, _ getTotal) (actor.Control, int, error) {
	return actor.Ok(), s.total, nil
}

func main() {
	if verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, log); err != nil {
		log.Error("load test failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	group := keyed.NewGroup(keyed.Options[int, add, getTotal, int]{
		Name:    "summer",
		Context: ctx,
		Logger:  log,
		Actor:   actor.Options{MailboxSize: mailboxSize},
		Create: func(int) (actor.Actor[add, getTotal, int], error) {
			return &summer{}, nil
		},
	})

	log.Info("starting",
		slog.Int("messages", N),
		slog.Int("producers", producers),
		slog.Int("actors", numActors),
		slog.Int("mailbox", mailboxSize),
	)

	startAt := time.Now()

	var (
		wg   sync.WaitGroup
		errs = make(chan error, producers)
	)
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := p; i < N; i += producers {
				ref, err := group.Get(i % numActors)
				if err != nil {
					errs <- err
					return
				}
				if err := ref.Send(ctx, add{n: 1}); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return err
	}

	total := 0
	for k := range numActors {
		ref, err := group.Get(k)
		if err != nil {
			return err
		}
		v, err := ref.Ask(ctx, getTotal{})
		if err != nil {
			return fmt.Errorf("actor %d: %w", k, err)
		}
		total += v
	}
	elapsed := time.Since(startAt)

	if err := group.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if total != N {
		return fmt.Errorf("lost messages: sent=%d applied=%d", N, total)
	}

	log.Info("done",
		slog.Duration("elapsed", elapsed),
		slog.Float64("msg_per_sec", float64(N)/elapsed.Seconds()),
	)
	return nil
}
