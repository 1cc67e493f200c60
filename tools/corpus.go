package tools

import (
	"errors"
	"fmt"

	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/corpus"
	"github.com/opencatalog/z3950/std/log"
	"github.com/opencatalog/z3950/std/utils"
	"github.com/opencatalog/z3950/std/utils/toolutils"
	"github.com/opencatalog/z3950/std/z3950"
	"github.com/spf13/cobra"
)

// Corpus manages the capture corpus.
type Corpus struct {
	cfg *Config
}

func (c *Corpus) String() string {
	return "corpus"
}

func (c *Corpus) withStore(fn func(s corpus.Store) error) error {
	store, err := c.cfg.OpenCorpus()
	if err != nil {
		return fmt.Errorf("unable to open corpus: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// add stores every BER unit of the input files in one transaction.
func (c *Corpus) add(cmd *cobra.Command, args []string) error {
	return c.withStore(func(store corpus.Store) error {
		tx, err := store.Begin()
		if err != nil {
			return err
		}

		added := 0
		for _, path := range args {
			err = forEachFrame(cmd, path, c.cfg.Limits, func(wire []byte, _ *ber.Node) error {
				key, err := tx.Put(wire)
				if err != nil {
					return err
				}
				log.Debug(c, "Stored unit", "key", key, "len", len(wire))
				fmt.Fprintln(cmd.OutOrStdout(), key)
				added++
				return nil
			})
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("%s: %w", path, err)
			}
		}

		if err = tx.Commit(); err != nil {
			return err
		}
		log.Info(c, "Added units to corpus", "count", added)
		return nil
	})
}

func (c *Corpus) list(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	return c.withStore(func(store corpus.Store) error {
		return store.Walk(func(key corpus.Key, wire []byte) error {
			name := "-"
			if p, err := z3950.Parse(wire, ber.WithLimits(c.cfg.Limits)); err == nil {
				name = z3950.Name(p)
			}
			fmt.Fprintf(out, "%s %6d %s\n", key, len(wire), name)
			return nil
		})
	})
}

func (c *Corpus) show(cmd *cobra.Command, args []string) error {
	key, err := corpus.ParseKey(args[0])
	if err != nil {
		return err
	}
	return c.withStore(func(store corpus.Store) error {
		wire, err := store.Get(key)
		if err != nil {
			return err
		}
		if wire == nil {
			return fmt.Errorf("no unit with key %s", key)
		}
		p, err := z3950.Parse(wire, ber.WithLimits(c.cfg.Limits))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), z3950.Sprint(p))
		return nil
	})
}

func (c *Corpus) remove(cmd *cobra.Command, args []string) error {
	keys := make([]corpus.Key, 0, len(args))
	for _, arg := range args {
		key, err := corpus.ParseKey(arg)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}
	return c.withStore(func(store corpus.Store) error {
		for _, key := range keys {
			if err := store.Remove(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// verify re-checks every stored unit.
func (c *Corpus) verify(cmd *cobra.Command, _ []string) error {
	return c.withStore(func(store corpus.Store) error {
		stats := verifyStats{}
		err := store.Walk(func(key corpus.Key, wire []byte) error {
			n, err := ber.Parse(wire, ber.WithLimits(c.cfg.Limits))
			if err != nil {
				stats.total++
				stats.failed++
				log.Warn(c, "Unable to parse stored unit", "key", key, "err", err)
				return nil
			}
			stats.check(c, key.String(), wire, n)
			return nil
		})
		if err != nil {
			return err
		}

		count, err := store.Len()
		if err != nil {
			return err
		}
		if count != stats.total {
			return errors.New("corpus changed during verification")
		}
		log.Info(c, "Corpus verified", "result", utils.If(stats.failed == 0, "ok", "FAIL"))
		return stats.print(toolutils.StatusPrinter{File: cmd.OutOrStdout(), Padding: 12})
	})
}
