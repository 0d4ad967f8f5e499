// Command hash-generator prints bcrypt digests for seeding the users table.
//
// Usage:
//
//	hash-generator [-cost 10] password...
//	echo -n secret | hash-generator -cost 12
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if err := run(os.Stdout, os.Stdin, *cost, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "hash-generator:", err)
		os.Exit(1)
	}
}

// run hashes each password in args, or each line of in when args is empty.
func run(out io.Writer, in io.Reader, cost int, args []string) error {
	passwords := args
	if len(passwords) == 0 {
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		passwords = lines
	}
	if len(passwords) == 0 {
		return fmt.Errorf("no passwords given")
	}

	hasher := auth.NewBcryptHasher(cost)
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read passwords: %w", err)
	}
	return lines, nil
}
