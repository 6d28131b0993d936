package main

import (
	"context"
	"dynamic-voice/infrastructure/storage"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// store_inspect prints the channel records and preferred names of a bot database.
// Stop the bot first when inspecting a badger directory: badger holds an exclusive lock.
func main() {
	driver := flag.String("driver", string(storage.DriverBadger), "Store driver (badger|sqlite)")
	dbPath := flag.String("db", "", "Path to the database (directory for badger, file for sqlite)")
	flag.Parse()
	if *dbPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store, err := storage.Open(ctx, storage.Driver(*driver), *dbPath, logger)
	if err != nil {
		log.Fatal("Error while opening store: ", err)
	}
	defer store.Close()

	records, err := store.GetAllChannelRecords(ctx)
	if err != nil {
		log.Fatal(err)
	}
	printHeader(fmt.Sprintf("channels (%d)", len(records)))
	table := newTable("Channel ID", "Owner ID")
	for _, r := range records {
		table.Append([]string{r.ChannelID, r.OwnerID})
	}
	table.Render()

	lister, ok := store.(storage.NameLister)
	if !ok {
		return
	}
	names, err := lister.AllPreferredNames(ctx)
	if err != nil {
		log.Fatal(err)
	}
	printHeader(fmt.Sprintf("custom_channel_names (%d)", len(names)))
	table = newTable("User ID", "Custom name")
	for _, userID := range sortedKeys(names) {
		table.Append([]string{userID, names[userID]})
	}
	table.Render()
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render(" " + title + " "))
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
