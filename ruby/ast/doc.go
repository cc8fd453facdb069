// Package ast models the syntax trees and comment tokens of the Ruby parser
// gem, and reads them from the gem's s-expression notation.
package ast
