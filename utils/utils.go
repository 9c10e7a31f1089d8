package utils

import (
	"io"
	"log"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

func Any[A any](input []A, predicate func(A) bool) bool {
	for _, item := range input {
		if predicate(item) {
			return true
		}
	}
	return false
}

// KeyBy indexes input by the given key. Later items win on duplicate keys.
func KeyBy[K comparable, A any](input []A, key func(A) K) map[K]A {
	output := make(map[K]A, len(input))
	for _, item := range input {
		output[key(item)] = item
	}
	return output
}

// GroupBy keeps the input order inside every group.
func GroupBy[K comparable, A any](input []A, key func(A) K) map[K][]A {
	output := make(map[K][]A)
	for _, item := range input {
		k := key(item)
		output[k] = append(output[k], item)
	}
	return output
}

// Closer is meant for defer statements: defer utils.Closer(conn)()
func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("failed to close: %v", err)
		}
	}
}
