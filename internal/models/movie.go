// Package models defines the data structures exchanged between the upstream
// catalog sources, the gateway and its clients.
package models

import "fmt"

// Movie is a single catalog entry as published by an upstream source.
type Movie struct {
	// Title is the movie title.
	Title string `json:"Title"`

	// Year is the release year. It is passed through as-is.
	Year int `json:"Year"`

	// Genre is the genre label given by the source.
	Genre string `json:"Genre"`

	// ImageURL points at the poster image.
	ImageURL string `json:"ImageUrl"`
}

func (m Movie) String() string {
	return fmt.Sprintf("%s (%d, %s)", m.Title, m.Year, m.Genre)
}

// Catalog holds the movies of one source, in source order.
type Catalog []Movie

// AggregateResult holds one Catalog per requested source, aligned with the
// order the sources were requested in.
type AggregateResult []Catalog

// Len returns the total number of movies across all catalogs.
func (r AggregateResult) Len() int {
	n := 0
	for _, c := range r {
		n += len(c)
	}
	return n
}
