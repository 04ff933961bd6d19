package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/df07/go-whitted-raytracer/pkg/cache"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	addr := flag.String("addr", "", "Address to serve on (overrides RT_SERVER_ADDRESS)")
	envFile := flag.String("env-file", ".env", "Optional .env file to load")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*envFile)
	if err != nil {
		glog.Errorf("Error loading config: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ServerAddress = *addr
	}

	var renderCache *cache.Cache
	if cfg.CacheDir != "" {
		renderCache, err = cache.Open(cfg.CacheDir, 0)
		if err != nil {
			glog.Errorf("Error opening render cache: %v", err)
			glog.Flush()
			os.Exit(1)
		}
		defer renderCache.Close()
	}

	var uploader output.Sink
	if cfg.UploadsEnabled() {
		s3Sink, err := output.NewS3Sink(cfg)
		if err != nil {
			glog.Errorf("Error configuring S3 uploads: %v", err)
			glog.Flush()
			os.Exit(1)
		}
		uploader = s3Sink
	}

	webServer := server.NewServer(cfg, renderCache, uploader)

	glog.Infof("Whitted Raytracer Web Server")
	glog.Infof("Visit http://localhost%s/api/scenes to list scenes", cfg.ServerAddress)

	if err := webServer.Start(); err != nil {
		glog.Errorf("Error starting server: %v", err)
	}
}
