// Package project implements the plotdoc document model.
//
// A Project owns a single root ItemCollection and a flat id index over every
// item below it. Items are folders, notes, datasets and charts; folders (and
// the root) are collections that keep their children in insertion order.
//
// # Identity
//
// Every item has a globally unique id generated with google/uuid unless one is
// supplied. Ids survive serialization: ToDict followed by FromDict yields an
// item with the same id, name, timestamps, metadata and variant fields.
//
// # Addressing the root
//
// The root is never stored in the index. FindItem special-cases its id, and
// RootToken ("root") is accepted wherever a parent id is expected.
//
// # Cascade removal
//
// Removing a collection removes every descendant from both the tree and the
// index. The subtree ids are collected first and only then detached, so no
// map is modified while it is being traversed.
//
// The model performs no locking; callers own it from a single goroutine.
package project
