package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
)

func init() {
	// Release mode unless GIN_MODE says otherwise.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           order-time-checker
// @version         1.0
// @description     Validates requested pickup, delivery and date-time order slots against business hours and lead times.

// @BasePath  /
// @schemes http https
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
