// Package talkfeed turns the dhammatalks.org evening-talk archive page into a
// catalog of talks and publishes it as a podcast feed and a landing page.
//
// This package contains domain types, interfaces and the extraction engine,
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// etree/, sqlite/).
package talkfeed
