package main

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// The portfolio site serves the static page and relays contact form posts
// to the intake service so the browser never talks to a mail provider
// directly. It carries no pipeline logic of its own.

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	intakeURL := os.Getenv("INTAKE_URL")
	if intakeURL == "" {
		logrus.Warn("INTAKE_URL not set, contact form submissions will fail")
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title": "Portfolio",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	client := &http.Client{Timeout: 15 * time.Second}

	r.POST("/contact", func(c *gin.Context) {
		if intakeURL == "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": "intake_unreachable"})
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error"})
			return
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, intakeURL+"/contact", bytes.NewReader(body))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "intake_unreachable"})
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			logrus.Errorf("Failed to relay contact submission: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "intake_unreachable"})
			return
		}
		defer resp.Body.Close()

		// Mirror the intake service's verdict back to the browser
		c.DataFromReader(resp.StatusCode, resp.ContentLength, "application/json", resp.Body, nil)
	})

	port := os.Getenv("SITE_PORT")
	if port == "" {
		port = "3000"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Site server error: %v", err)
	}
}
