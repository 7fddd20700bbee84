// Package maplestory provides resource methods for the MapleStory
// endpoints of the Nexon Open API.
//
// The package covers ocid lookup, character profile and popularity
// data, and the overall ranking, plus a bounded-concurrency batch
// fetch for resolving many characters at once.
package maplestory
