package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"absign/config"
	"absign/internal/database"
	"absign/internal/router"
	"absign/pkg/cloudinary"
	"absign/pkg/mailer"
	"absign/pkg/payment"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	database.SeedAdmin(db, &cfg.Admin)

	var provider payment.Provider
	if cfg.Stripe.APIKey != "" {
		provider = payment.NewStripeProvider(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	} else {
		log.Println("[payments] no Stripe API key, using stub provider")
		provider = &payment.StubProvider{}
	}

	mail := mailer.New(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SenderEmail, cfg.Mail.SenderPassword, cfg.Mail.DryRun, cfg.Mail.SendTimeout)

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatalf("cloudinary: %v", err)
		}
	} else {
		log.Println("[uploads] Cloudinary not configured, review photo uploads disabled")
	}

	engine := router.Setup(cfg, db, provider, mail, cloud)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
