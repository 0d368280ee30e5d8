package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"dualpresenter/internal/collation"
	"dualpresenter/internal/deckio"
	"dualpresenter/internal/logging"
	"dualpresenter/internal/roster"
)

// CheckDirectoryAccess verifies path is a directory the process can read and
// write.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCardsFile parses the deck export and reports its size.
func CheckCardsFile(path string) Result {
	return checkSheet("Cards file", path, func(r io.Reader) (string, error) {
		cards, err := deckio.ReadCards(r, logging.NewNop())
		if err != nil {
			return "", err
		}
		names := 0
		for _, card := range cards {
			if card.Type == roster.CardNames {
				names++
			}
		}
		return fmt.Sprintf("%d cards, %d names cards", len(cards), names), nil
	})
}

// CheckNamesFile parses the roster export and reports its size.
func CheckNamesFile(path string) Result {
	return checkSheet("Names file", path, func(r io.Reader) (string, error) {
		names, err := deckio.ReadNames(r)
		if err != nil {
			return "", err
		}
		attending := 0
		for _, name := range names {
			if name.Attending {
				attending++
			}
		}
		return fmt.Sprintf("%d names, %d attending", len(names), attending), nil
	})
}

func checkSheet(name, path string, parse func(io.Reader) (string, error)) Result {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist; run `dualpresenter data init`)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer file.Close()

	summary, err := parse(file)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", filepath.Base(path), summary)}
}

// CheckLocale verifies the collation locale is usable.
func CheckLocale(locale string) Result {
	const name = "Collation locale"
	cmp, err := collation.ForLocale(locale)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: cmp.Locale().String()}
}

// CheckSessionLock verifies no other process holds the session lock.
func CheckSessionLock(ctx context.Context, stateFile string) Result {
	const name = "Session lock"
	if err := ctx.Err(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	lockPath := stateFile + ".lock"
	if _, err := os.Stat(filepath.Dir(lockPath)); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", filepath.Dir(lockPath), err)}
	}
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", lockPath, err)}
	}
	if !ok {
		return Result{Name: name, Detail: fmt.Sprintf("%s (held by another process)", lockPath)}
	}
	_ = lock.Unlock()
	return Result{Name: name, Passed: true, Detail: "free"}
}
