package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo         bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print postfix token sequences")
	flag.Parse()

	exprs := flag.Args()
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) == "" {
				continue
			}
			exprs = append(exprs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	verb += "\n"
	code := 0
	for _, s := range exprs {
		tokens, err := calc.Tokenize(s)
		if err != nil {
			fmt.Println(err)
			code = 1
			continue
		}
		postfix := calc.ToPostfix(tokens)
		if echo {
			fmt.Printf("%v : ", postfix)
		}
		r, err := calc.Evaluate(postfix)
		if err != nil {
			fmt.Println(err)
			code = 1
			continue
		}
		fmt.Printf(verb, r)
	}
	os.Exit(code)
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
