// Command symtab drives a ProbeMap from a line oriented command script read from stdin or a file.
//
//	put <key> <char>   store char under key
//	put <key>          store the null value, which deletes key
//	get <key>          print the value or null
//	has <key>          print whether key is present
//	del <key>          delete key
//	hash <key>         print the slot key hashes to
//	size | empty | keys | dump
package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	Go_SymTab "github.com/g-m-twostay/go-symtab"
	"github.com/g-m-twostay/go-symtab/Maps/ProbeMap"
	"github.com/sirupsen/logrus"
)

type config struct {
	capacity int
	hash     string
	file     string
	verbose  bool
}

func parseFlags(args []string, errOut io.Writer) (*config, error) {
	c := &config{}
	fs := flag.NewFlagSet("symtab", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVar(&c.capacity, "cap", ProbeMap.DefaultCap, "number of slots in the table")
	fs.StringVar(&c.hash, "hash", "codesum", "hash function: codesum, xxhash or seeded")
	fs.StringVar(&c.file, "f", "", "read commands from this file instead of stdin")
	fs.BoolVar(&c.verbose, "v", false, "log every command")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, nil
}

func (c *config) hasher() (Go_SymTab.Hasher, error) {
	switch c.hash {
	case "codesum":
		return Go_SymTab.CodeSum, nil
	case "xxhash":
		return Go_SymTab.XXHash, nil
	case "seeded":
		return Go_SymTab.Seeded(maphash.MakeSeed()), nil
	}
	return nil, fmt.Errorf("unknown hash function %q", c.hash)
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// realMain runs the driver and returns the process exit code, so deferred cleanup runs before exiting.
func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		log.WithError(err).Error("bad arguments")
		return 2
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	h, err := cfg.hasher()
	if err != nil {
		log.WithError(err).Error("bad arguments")
		return 2
	}
	table, err := ProbeMap.NewWith(cfg.capacity, h)
	if err != nil {
		log.WithError(err).Error("cannot create table")
		return 2
	}
	in := stdin
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			log.WithError(err).Error("cannot open script")
			return 1
		}
		defer f.Close()
		in = f
	}
	if err = run(in, stdout, table, log); err != nil {
		log.WithError(err).Error("reading commands")
		return 1
	}
	return 0
}

// run executes every command of r against table, writing results to w. Bad commands are logged and skipped.
func run(r io.Reader, w io.Writer, table *ProbeMap.ProbeMap, log logrus.FieldLogger) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		l := log.WithField("line", line)
		l.WithField("cmd", fields).Debug("exec")
		if err := exec(w, table, fields); err != nil {
			l.WithError(err).WithField("capacity", table.Cap()).Error("command failed")
		}
	}
	return sc.Err()
}

// arity is the min and max number of arguments of each command.
var arity = map[string][2]int{
	"put": {1, 2}, "get": {1, 1}, "has": {1, 1}, "del": {1, 1}, "hash": {1, 1},
	"size": {0, 0}, "empty": {0, 0}, "keys": {0, 0}, "dump": {0, 0},
}

func exec(w io.Writer, table *ProbeMap.ProbeMap, fields []string) error {
	cmd, args := fields[0], fields[1:]
	a, ok := arity[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", cmd)
	}
	if len(args) < a[0] || len(args) > a[1] {
		return fmt.Errorf("%s takes %d to %d arguments, got %d", cmd, a[0], a[1], len(args))
	}
	var err error
	switch cmd {
	case "put":
		val := ProbeMap.Null
		if len(args) == 2 {
			if utf8.RuneCountInString(args[1]) != 1 {
				return fmt.Errorf("value %q isn't a single character", args[1])
			}
			val, _ = utf8.DecodeRuneInString(args[1])
		}
		return table.Put(args[0], val)
	case "get":
		if v, ok := table.Get(args[0]); ok {
			_, err = fmt.Fprintf(w, "%c\n", v)
		} else {
			_, err = fmt.Fprintln(w, "null")
		}
	case "has":
		_, err = fmt.Fprintln(w, table.Contains(args[0]))
	case "del":
		table.Delete(args[0])
	case "hash":
		_, err = fmt.Fprintln(w, table.Hash(args[0]))
	case "size":
		_, err = fmt.Fprintln(w, table.Size())
	case "empty":
		_, err = fmt.Fprintln(w, table.IsEmpty())
	case "keys":
		_, err = fmt.Fprintln(w, strings.Join(table.Keys(), " "))
	case "dump":
		err = table.DumpTo(w)
	}
	return err
}
