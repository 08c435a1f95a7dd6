// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ludense reads a square matrix in text form and prints its inverse or
// the solution of a linear system.
//
// The input format is a line holding n followed by n rows of n
// whitespace-separated doubles. With -solve, one further line of n values
// gives the right-hand side. Output uses the same layout. Exit status is
// 1 on usage or parse errors and 2 when the matrix is singular.
//
// Usage:
//
//	ludense [-solve] [file]
//	ludense -random n [-seed s]
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/solvelab/ludense/dense"
	"github.com/solvelab/ludense/lu"
)

func main() {
	solve := flag.Bool("solve", false, "read a right-hand side after the matrix and print the solution")
	random := flag.Int("random", 0, "print a random n×n matrix instead of reading input")
	seed := flag.Uint64("seed", 1, "seed for -random")
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}

	if *random > 0 {
		m := dense.New(*random)
		dense.RandomFill(m, rand.New(rand.NewPCG(*seed, *seed)))
		writeMatrix(os.Stdout, m)
		return
	}

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "ludense:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	r := bufio.NewReader(in)
	a, err := readMatrix(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ludense:", err)
		os.Exit(1)
	}

	if *solve {
		b, err := readVector(r, a.Size())
		if err != nil {
			fmt.Fprintln(os.Stderr, "ludense:", err)
			os.Exit(1)
		}
		var f lu.LU
		if err := f.Factorize(a); err != nil {
			fmt.Fprintln(os.Stderr, "ludense:", err)
			os.Exit(2)
		}
		x, err := f.SolveVec(b)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ludense:", err)
			os.Exit(2)
		}
		writeVector(os.Stdout, x)
		return
	}

	inv := dense.NewColMajor(a.Size())
	if err := lu.Invert(a, inv); err != nil {
		fmt.Fprintln(os.Stderr, "ludense:", err)
		os.Exit(2)
	}
	writeMatrix(os.Stdout, inv)
}

func readMatrix(r io.ByteScanner) (*dense.Dense, error) {
	n, err := readInt(r)
	if err != nil {
		return nil, fmt.Errorf("reading size: %w", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("invalid size %d", n)
	}
	m := dense.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := readFloat(r)
			if err != nil {
				return nil, fmt.Errorf("reading element (%d,%d): %w", i, j, err)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func readVector(r io.ByteScanner, n int) ([]float64, error) {
	b := make([]float64, n)
	for i := range b {
		v, err := readFloat(r)
		if err != nil {
			return nil, fmt.Errorf("reading rhs element %d: %w", i, err)
		}
		b[i] = v
	}
	return b, nil
}

func writeMatrix(w io.Writer, m dense.Matrix) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	n := m.Size()
	fmt.Fprintln(bw, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
}

func writeVector(w io.Writer, x []float64) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for i, v := range x {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	bw.WriteByte('\n')
}

// token reads the next whitespace-delimited token.
func token(r io.ByteScanner) (string, error) {
	var tok []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func readInt(r io.ByteScanner) (int, error) {
	t, err := token(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", t)
	}
	return n, nil
}

func readFloat(r io.ByteScanner) (float64, error) {
	t, err := token(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errors.New("unexpected end of input")
		}
		return 0, err
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", t)
	}
	return v, nil
}
