package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	JWTSecret         string
	RazorpayKeyID     string
	RazorpayKeySecret string
}

// Load reads the server configuration from the environment. Connection
// and secret values are required; everything optional lives in Features.
func Load() (Config, error) {
	cfg := Config{
		Port:              os.Getenv("PORT"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           os.Getenv("MONGO_DB"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoURI == "" {
		return cfg, fmt.Errorf("MONGO_URI environment variable not set")
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "templeconnect"
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return cfg, fmt.Errorf("RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET environment variables not set")
	}

	return cfg, nil
}
