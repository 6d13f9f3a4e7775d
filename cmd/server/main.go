package main

import (
	"os"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/app"
)

// @title           QA RAG API
// @version         1.0
// @description     Question answering over uploaded PDF documents using retrieval-augmented generation.
// @BasePath        /
func main() {
	os.Exit(app.Run())
}
