package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/axiomhq/nhuff/internal/blob"
	"github.com/axiomhq/nhuff/internal/config"
	"github.com/axiomhq/nhuff/internal/handler"
	"github.com/axiomhq/nhuff/internal/repo"
	"github.com/axiomhq/nhuff/internal/router"
	"github.com/axiomhq/nhuff/internal/service"
	"github.com/axiomhq/nhuff/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logg := logger.New()

	tables := repo.NewTableRepoInMemory()
	if cfg.DatabaseURL != "" {
		codec, err := blob.ParseCodec(cfg.TableCompression)
		if err != nil {
			log.Fatal(err)
		}
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		tables = repo.NewTableRepoPostgres(pool, codec)
		logg.Infof("using postgres table store (compression=%s)", codec)
	}

	svc := service.NewCodecService(tables, logg, cfg.Radix)
	tableH := handler.NewTableHandler(svc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		TableHandler: tableH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
