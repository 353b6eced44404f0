package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/syllo/pkg/syllo"
	"github.com/cognicore/syllo/pkg/syllo/config"
)

func main() {
	lang := flag.String("lang", "en", "Quiz language code")
	multi := flag.Bool("multi", false, "Generate a multi-answer quiz")
	count := flag.Int("n", 1, "Number of quizzes to generate")
	asJSON := flag.Bool("json", false, "Emit JSON instead of text")
	templates := flag.String("templates", "", "Path to templates YAML (optional)")
	translations := flag.String("translations", "", "Path to translations YAML (optional)")
	flag.Parse()

	loader := config.Loader{
		TemplatesPath:    *templates,
		TranslationsPath: *translations,
	}
	comp, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	engine, err := syllo.New(syllo.Options{
		Library: comp.Library,
		Bundle:  comp.Bundle,
	})
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	for i := 0; i < *count; i++ {
		var quiz syllo.Quiz
		if *multi {
			quiz, err = engine.GenerateMultiQuiz(*lang)
		} else {
			quiz, err = engine.GenerateQuiz(*lang)
		}
		if err != nil {
			log.Fatalf("generate: %v", err)
		}

		if *asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(quiz); err != nil {
				log.Fatalf("encode: %v", err)
			}
			continue
		}
		printQuiz(quiz)
	}
}

func printQuiz(quiz syllo.Quiz) {
	fmt.Printf("[%s]\n", quiz.ID)
	for _, premise := range quiz.Premises {
		fmt.Printf("  %s\n", premise)
	}
	fmt.Println("  ---")
	for i, a := range quiz.Answers {
		marker := " "
		if a.Correct {
			marker = "*"
		}
		fmt.Printf("  %d. [%s] %s\n", i+1, marker, a.Sentence)
	}
	fmt.Println()
}
