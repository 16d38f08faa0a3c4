package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/osse101/CookieClicker_Go/internal/bootstrap"
	"github.com/osse101/CookieClicker_Go/internal/catalog"
	"github.com/osse101/CookieClicker_Go/internal/config"
	"github.com/osse101/CookieClicker_Go/internal/identity"
	"github.com/osse101/CookieClicker_Go/internal/savegame"
	"github.com/osse101/CookieClicker_Go/internal/storage"
)

func main() {
	list := flag.Bool("list", false, "list saved keys for the player instead of removing them")
	player := flag.String("player", "", "player id (defaults to PLAYER_ID)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *player != "" {
		cfg.PlayerID = *player
	}
	// Decorators would only hide what is actually stored
	cfg.CacheSize = 0

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	namespace := identity.Namespace(identity.NewStatic(cfg.PlayerID, cfg.PlayerName).Current())

	if *list {
		if err := listKeys(ctx, store.Backend, namespace); err != nil {
			log.Fatalf("Failed to list keys: %v", err)
		}
		return
	}

	producers, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load producer catalog: %v", err)
	}

	log.Printf("Removing saved game %s from %s storage...\n", namespace, cfg.StorageDriver)
	if err := savegame.Reset(ctx, store, savegame.NewCodec(namespace, producers)); err != nil {
		log.Fatalf("Failed to reset saved game: %v", err)
	}

	log.Println("\n✅ Saved game reset complete!")
}

func listKeys(ctx context.Context, backend storage.Adapter, namespace string) error {
	lister, ok := backend.(storage.Lister)
	if !ok {
		return fmt.Errorf("storage driver cannot list keys")
	}
	keys, err := lister.Keys(ctx, namespace+savegame.KeySeparator)
	if err != nil {
		return err
	}
	for _, key := range keys {
		value, _, err := backend.Get(ctx, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s = %s\n", key, value)
	}
	return nil
}
