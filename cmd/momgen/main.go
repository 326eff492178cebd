package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-agent/internal/adapter/presenter"
	"github.com/johnquangdev/minutes-agent/internal/usecase/pipeline"
	"github.com/johnquangdev/minutes-agent/internal/usecase/summarize"
	pkgai "github.com/johnquangdev/minutes-agent/pkg/ai"
	"github.com/johnquangdev/minutes-agent/pkg/config"
)

// sampleTranscript drives the demo when no input file is given.
const sampleTranscript = `John: Good morning everyone. Let's start today's meeting about the Q4 product launch.

Sarah: Thanks John. I've prepared the agenda. We need to decide on the launch date and assign tasks.

Mike: I think we should target November 15th. That gives us enough time to complete testing.

John: Agreed. Sarah, can you handle the marketing materials? We need them by November 1st.

Sarah: Yes, I'll prepare the marketing materials by November 1st. Mike, can you finish the testing?

Mike: I'll complete the testing by November 10th. We should also update the documentation.

John: Good point. Let's assign documentation to Sarah as well. Deadline is November 12th.

Sarah: Understood. I'll update the documentation by November 12th.

Mike: One more thing - we need to schedule a review meeting for next Friday.

John: Perfect. Let's wrap up. Action items are assigned and deadlines are set.`

func main() {
	var (
		file      = flag.String("file", "", "transcript file to process (default: built-in sample)")
		title     = flag.String("title", "", "meeting title (inferred when empty)")
		format    = flag.String("format", "auto", "transcript format: ami, enron or auto")
		channel   = flag.String("channel", "slack", "reminder channel: slack, email or text")
		output    = flag.String("output", "text", "output format: text, markdown or json")
		reminders = flag.Bool("reminders", false, "also print reminder notifications")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	transcript := sampleTranscript
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read transcript file: %v", err)
		}
		transcript = string(data)
	}

	var external summarize.External
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	if groqClient.Available() {
		external = groqClient
	}

	pipe := pipeline.New(external, logger)
	result := pipe.RunWithReminders(context.Background(), transcript, pipeline.Options{
		Title:      *title,
		FormatHint: *format,
		Channel:    *channel,
	})

	switch *output {
	case "json":
		out, err := presenter.RenderJSON(result.Minutes)
		if err != nil {
			log.Fatalf("Failed to render minutes: %v", err)
		}
		fmt.Println(out)
	case "markdown":
		fmt.Println(presenter.RenderMarkdown(result.Minutes))
	default:
		fmt.Println(presenter.RenderText(result.Minutes))
	}

	if *reminders {
		fmt.Println("FOLLOW-UP REMINDERS")
		fmt.Println("===================")
		for i, reminder := range result.Reminders {
			fmt.Printf("\nReminder %d:\n%s\n", i+1, reminder)
		}
	}
}
