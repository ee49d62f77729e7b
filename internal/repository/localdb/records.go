package localdb

import (
	"sort"
	"time"
)

// Shared lookup helpers for the owner-scoped content collections. Each
// repo supplies field accessors instead of the domain types carrying
// store-specific methods.

func findByID[T any](d *DB, collection, id string, getID func(T) string, notFound error) (T, error) {
	var zero T
	all, err := readAll[T](d, collection)
	if err != nil {
		return zero, err
	}
	for _, rec := range all {
		if getID(rec) == id {
			return rec, nil
		}
	}
	return zero, notFound
}

func listByOwner[T any](d *DB, collection, ownerID string, getOwner func(T) string, createdAt func(T) time.Time) ([]T, error) {
	all, err := readAll[T](d, collection)
	if err != nil {
		return nil, err
	}
	owned := make([]T, 0)
	for _, rec := range all {
		if getOwner(rec) == ownerID {
			owned = append(owned, rec)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return createdAt(owned[i]).After(createdAt(owned[j]))
	})
	return owned, nil
}

func replaceByID[T any](d *DB, collection, id string, updated T, getID func(T) string, notFound error) error {
	all, err := readAll[T](d, collection)
	if err != nil {
		return err
	}
	for i, rec := range all {
		if getID(rec) == id {
			all[i] = updated
			return replaceAll(d, collection, all)
		}
	}
	return notFound
}

func deleteByID[T any](d *DB, collection, id string, getID func(T) string) error {
	all, err := readAll[T](d, collection)
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rec := range all {
		if getID(rec) != id {
			kept = append(kept, rec)
		}
	}
	return replaceAll(d, collection, kept)
}
