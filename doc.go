// Package folio provides the core types and services to track personal
// investment portfolios of crypto and stock assets.
//
// A Portfolio owns Assets, and each Asset owns the Transactions (buys, sells,
// conversions, rewards) recorded against it. Position metrics such as total
// quantity, average buy price and total invested are derived from the
// transaction log on demand, so the log stays the single source of truth.
//
// Market quotes come from public HTTP APIs (Binance for crypto, Yahoo Finance
// for stocks, exchangerate-api for FX conversion, Whale Alert for large
// on-chain transfers) behind the MarketData service, which caches quotes in
// memory with short TTLs and keeps a per-ticker daily price cache on disk.
//
// Portfolios persist as one JSON document per portfolio under a data
// directory, optionally encrypted (see Cipher).
//
// This package serves as the foundational logic for the `pft` command-line
// tool.
package folio
