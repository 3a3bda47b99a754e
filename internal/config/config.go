// Package config loads JSON configuration files, the same
// os.Open-then-json.Decode approach as the teacher's utils/config
// package, generalized with a type parameter so a binary (here
// cmd/pagerd; cmd/pagermon takes flags only) declares its own config
// struct instead of passing an interface{} out-param.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the JSON file at path into a freshly zeroed T.
//
// Example:
//
//	type Config struct {
//		Frames int `json:"frames"`
//	}
//	cfg, err := config.Load[Config]("./configs/pagerd.json")
func Load[T any](path string) (T, error) {
	var cfg T
	if err := loadInto(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadInto(path string, cfg any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(cfg)
}
