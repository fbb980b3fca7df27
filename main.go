package main

import (
	"log"

	"github.com/avikram24/skillscan/api"
	"github.com/avikram24/skillscan/config"
	"github.com/avikram24/skillscan/skills"
)

func main() {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("❌ could not load configuration: %v", err)
	}
	log.Println("✅ Configuration loaded successfully.")

	// Step 2: Build the skill vocabulary (built-in, or a custom YAML file)
	vocab := skills.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		vocab, err = skills.LoadVocabularyFile(cfg.VocabularyFile)
		if err != nil {
			log.Fatalf("❌ could not load vocabulary file: %v", err)
		}
	}
	log.Printf("✅ Vocabulary ready with %d skills.", vocab.Len())

	// Step 3: Build the annotation engine. A full-engine failure is not
	// fatal: the service degrades to tokenization-only matching.
	var engine skills.Engine
	if cfg.AnnotationMode == config.AnnotationModeMinimal {
		engine = skills.NewMinimalEngine()
		log.Println("✅ Minimal annotation engine selected (tokenization only).")
	} else {
		proseEngine, err := skills.NewProseEngine()
		if err != nil {
			log.Printf("⚠️ full annotation engine unavailable: %v", err)
			log.Println("⚠️ Falling back to the minimal engine; entity and noun-chunk matching are disabled.")
			log.Println("⚠️ Reinstall the prose model data (go mod download github.com/jdkato/prose/v2) to restore full annotation.")
			engine = skills.NewMinimalEngine()
		} else {
			engine = proseEngine
			log.Println("✅ Full annotation engine initialized (entities + parsing).")
		}
	}

	// Step 4: Initialize the skill extraction processor
	processor := skills.NewMatcherProcessor(vocab, engine)
	log.Println("✅ Skill extraction processor initialized.")

	// Step 5: Create the API server
	server, err := api.NewServer(cfg, processor)
	if err != nil {
		log.Fatalf("❌ could not create the server: %v", err)
	}
	log.Println("✅ API server created.")

	// Step 6: Start the HTTP server
	log.Printf("🚀 Starting server on %s", cfg.ServerAddress)
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
