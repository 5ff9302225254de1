// Package instance parses the flat text instance file format into a
// problem.Problem: eight comma-separated sections, each preceded by a
// comment line whose first rune is neither a digit nor '-'. All indices in
// the file are 1-based (vehicle index, call index, node references); Parse
// translates every one of them to the 0-based convention the rest of the
// module uses, at this single boundary.
//
// The format carries no escaping or quoting needs, so Parse is built on
// bufio.Scanner and strconv rather than a general-purpose CSV reader — see
// DESIGN.md for why no pack dependency fits this shape.
package instance
