// Package mython implements the execution engine for mython, a small
// indentation-sensitive, dynamically-typed, class-based scripting language.
// A program assigns variables, defines classes with methods (including
// dunder-style operator hooks such as __init__, __str__, __eq__, __lt__,
// __add__), performs arithmetic/logical/comparison operations, and emits
// output via print.
//
// Source text flows through three stages: the lexer turns characters into a
// token stream carrying synthetic INDENT/DEDENT/NEWLINE tokens, the parser
// turns tokens into an AST, and the tree-walking evaluator executes that AST
// against a closure (name to value bindings) and a context (the output
// stream). There is no bytecode and no JIT; evaluation is direct recursion
// over the AST.
package mython
