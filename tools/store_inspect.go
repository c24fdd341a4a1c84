package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"estate-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	// INSPECT_SHOW_INDEXES also lists the idx: and email: keys
	ShowIndexes bool `envconfig:"INSPECT_SHOW_INDEXES" default:"false"`
}

// describers render one stored record per key prefix.
var describers = map[string]func(value []byte) (id, detail string, err error){
	"property:": describe(func(p domain.Property) (string, string) {
		return p.ID, fmt.Sprintf("%s | %s | %.0f", p.Title, p.PropertyType, p.Price)
	}),
	"user:": describe(func(u domain.User) (string, string) {
		return u.ID, fmt.Sprintf("%s <%s> %s", u.FullName(), u.Email, u.UserType)
	}),
	"conversation:": describe(func(c domain.Conversation) (string, string) {
		return c.ID, fmt.Sprintf("%d participants, %d unread", len(c.Participants), c.UnreadCount)
	}),
	"msg:": describe(func(m domain.Message) (string, string) {
		return m.ID, fmt.Sprintf("%s: %s", m.SenderName, m.Content)
	}),
	"payment:": describe(func(p domain.Payment) (string, string) {
		return p.ID, fmt.Sprintf("%.2f %s %s", p.Amount, p.Currency, p.Status)
	}),
	"verification:": describe(func(v domain.VerificationRequest) (string, string) {
		return v.ID, fmt.Sprintf("%s for %s", v.Status, v.PropertyID)
	}),
	"notification:": describe(func(n domain.Notification) (string, string) {
		return n.ID, fmt.Sprintf("[%s] %s", n.Type, n.Title)
	}),
}

func describe[E domain.Entity](render func(E) (string, string)) func([]byte) (string, string, error) {
	return func(value []byte) (string, string, error) {
		record, err := domain.Deserialize[E](value)
		if err != nil {
			return "", "", err
		}
		id, detail := render(record)
		return id, detail, nil
	}
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	if config.BadgerFilepath == "" {
		config.BadgerFilepath = database.DefaultPath
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan, everything by default")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "ID", "Detail"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.KeyCopy(nil))
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if r := row(key, value, config.ShowIndexes); r != nil {
				table.Append(r)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func row(key string, value []byte, showIndexes bool) []string {
	for prefix, describer := range describers {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		kind := strings.TrimSuffix(prefix, ":")
		id, detail, err := describer(value)
		if err != nil {
			return []string{key, kind, "-", "CORRUPTED: " + err.Error()}
		}
		return []string{key, kind, id, detail}
	}
	if showIndexes {
		return []string{key, "index", "-", string(value)}
	}
	return nil
}
