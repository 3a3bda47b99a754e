package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/config"
	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/diskstore"
	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/logging"
	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/pager"
	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/physmem"
)

func main() {
	configPath := flag.String("config", "./configs/pagerd.json", "path to pagerd.json")
	flag.Parse()

	cfg, err := config.Load[daemonConfig](*configPath)
	if err != nil {
		panic(err)
	}

	log, err := logging.Init(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(log)

	disk, err := diskstore.Open(cfg.DiskPath, cfg.Blocks, cfg.PageSize)
	if err != nil {
		log.Error("opening disk store", "err", err)
		os.Exit(1)
	}
	defer disk.Close()

	mem, err := physmem.New(cfg.Frames, cfg.PageSize)
	if err != nil {
		log.Error("mapping physical memory", "err", err)
		os.Exit(1)
	}
	defer mem.Close()

	p, err := pager.New(pager.Config{
		Frames:    cfg.Frames,
		Blocks:    cfg.Blocks,
		PageSize:  cfg.PageSize,
		ArenaBase: cfg.ArenaBase,
		ArenaSize: cfg.ArenaSize,
	}, disk, mem, log)
	if err != nil {
		log.Error("constructing pager", "err", err)
		os.Exit(1)
	}

	srv := newService(p, log)
	srv.registerRoutes(http.DefaultServeMux)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("pagerd listening", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
