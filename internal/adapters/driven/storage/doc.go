// Package storage resolves the item store backing each configured source.
//
// Static sources are served by memory.CatalogueStore. History sources share
// the HistoryStore the factory was created with, which is either the SQLite
// store or memory.HistoryStore.
package storage
