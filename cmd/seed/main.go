package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarydesk/internal/book"
	"librarydesk/internal/circulation"
	"librarydesk/internal/config"
	"librarydesk/internal/logging"
	"librarydesk/internal/member"
)

var (
	configPath string
	verbose    bool
	opts       seedOptions
)

type seedOptions struct {
	Books   int
	Members int
	Loans   int
	Seed    int64
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the configured library backend with demo books, members and loans",
	Long: `Generates random books and members and lends some of the books out.
Existing records are kept; generated keys that already exist are skipped.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().IntVar(&opts.Books, "books", 50, "number of books to generate")
	rootCmd.Flags().IntVar(&opts.Members, "members", 20, "number of members to generate")
	rootCmd.Flags().IntVar(&opts.Loans, "loans", 30, "number of loan attempts")
	rootCmd.Flags().Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	repo, closeRepo, err := circulation.OpenRepository(ctx, cfg.Library, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	batch := &batchRepo{Repository: repo}
	store := circulation.NewStore(batch)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("refusing to seed over unreadable data: %w", err)
	}

	batch.hold = true
	res, err := seed(ctx, store, opts, logger)
	if err != nil {
		return err
	}
	batch.hold = false
	if err := store.Save(ctx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d books, %d members and %d loans (%d books total)\n",
		res.books, res.members, res.loans, len(store.Books()))
	return nil
}

type seedResult struct {
	books, members, loans int
}

// batchRepo drops saves while hold is set so a seed run is written once.
type batchRepo struct {
	circulation.Repository
	hold bool
}

func (r *batchRepo) SaveBooks(ctx context.Context, books []book.Book) error {
	if r.hold {
		return nil
	}
	return r.Repository.SaveBooks(ctx, books)
}

func (r *batchRepo) SaveMembers(ctx context.Context, members []member.Member) error {
	if r.hold {
		return nil
	}
	return r.Repository.SaveMembers(ctx, members)
}

// seed adds generated records to store. Loans go through the store's own
// rules, so the generated data keeps the lend/return invariants.
func seed(ctx context.Context, store *circulation.Store, o seedOptions, logger *zap.Logger) (seedResult, error) {
	rng := rand.New(rand.NewSource(o.Seed))
	var res seedResult

	for i := 0; i < o.Books; i++ {
		title := fmt.Sprintf("%s of %s", getRandomWord(rng), getRandomWord(rng))
		author := authors[rng.Intn(len(authors))]
		isbn := fmt.Sprintf("978-%08d", i+1)
		err := store.AddBook(title, author, isbn)
		if errors.Is(err, book.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return res, err
		}
		res.books++
	}

	for i := 0; i < o.Members; i++ {
		id := fmt.Sprintf("M%04d", i+1)
		err := store.RegisterMember(names[rng.Intn(len(names))], id)
		if errors.Is(err, member.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return res, err
		}
		res.members++
	}

	books, members := store.Books(), store.Members()
	if len(books) == 0 || len(members) == 0 {
		return res, nil
	}

	for i := 0; i < o.Loans; i++ {
		b := books[rng.Intn(len(books))]
		m := members[rng.Intn(len(members))]
		r, err := store.LendBook(ctx, m.MemberID, b.ISBN)
		if err != nil {
			return res, err
		}
		logger.Debug("seed loan", zap.String("isbn", b.ISBN), zap.String("member_id", m.MemberID), zap.Stringer("outcome", r.Outcome))
		if r.OK() {
			res.loans++
		}
	}
	return res, nil
}

var authors = []string{
	"Frank Herbert", "Jane Austen", "Ursula K. Le Guin", "Philip K. Dick", "Toni Morrison",
	"Italo Calvino", "Chinua Achebe", "Octavia E. Butler", "Jorge Luis Borges", "Haruki Murakami",
}

var names = []string{
	"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi", "Ivan", "Judy",
}

func getRandomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
