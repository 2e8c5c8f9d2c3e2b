/*
Package canon decides whether two collections of DynamoDB items are equal as
multisets, independent of record order.

Items are semi-structured: attribute maps whose values may nest scalars,
ordered lists, and unordered sets. Canonicalize maps an item to a Form, a
deterministic string encoding with the property that two items have equal
Forms iff they are semantically equal:

  - map entries are sorted by attribute name (insertion order erased)
  - list elements keep their positions (order significant)
  - set members are sorted by their canonical encoding (order erased)
  - numbers compare by decimal value, so "1.0" and "1" coincide

The same rules apply at every nesting depth, so a set inside a list inside a
map is canonicalized set-wise at its own level.

Equivalent compares Form multisets: insensitive to record order, sensitive
to duplicate counts. Diff reports the symmetric difference for diagnostics;
Equivalent itself returns a plain boolean.
*/
package canon
