package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/toommyliu/cs146-finalproject/internal/catalog"
	"github.com/toommyliu/cs146-finalproject/internal/queue"
	"github.com/toommyliu/cs146-finalproject/internal/search"
)

// test-search resolves each argument to its best catalog match, queues the
// matches in argument order and prints the search request the TUI would send.
func main() {
	cat := catalog.Default()
	if path := os.Getenv("CAMPUSPATH_CATALOG"); path != "" {
		loaded, err := catalog.LoadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		cat = loaded
	}

	queries := os.Args[1:]
	if len(queries) == 0 {
		// No queries given, use a fixed set
		queries = []string{"king", "eng", "student union", "yuh", "zzzz"}
	}

	fmt.Println("🧭 CampusPath Search Test")
	fmt.Println("========================")
	fmt.Println()

	q := queue.New()
	for _, query := range queries {
		matches := cat.Search(query)
		fmt.Printf("Query %q: %d matches\n", query, len(matches))
		for i, m := range matches {
			if i == 3 {
				fmt.Printf("  … %d more\n", len(matches)-3)
				break
			}
			fmt.Printf("  %d. %s (score %d)\n", i+1, m.Entry.Label(), m.Score)
		}
		if len(matches) > 0 {
			e := q.Append(matches[0].Entry)
			fmt.Printf("  queued as %s\n", e.EntryID)
		}
		fmt.Println()
	}

	req := search.NewRequest(q.Order(), cat)
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Request:")
	fmt.Println(string(data))

	trigger := search.NewTrigger(search.Stub{}, 5*time.Second)
	if _, err := trigger.Run(context.Background(), req); err != nil {
		fmt.Printf("Search: %v\n", err)
	}
}
