package ast

// Type is the tag of a node, spelled the way the Ruby parser gem spells it.
type Type string

const (
	// Literals
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeRational Type = "rational"
	TypeComplex  Type = "complex"
	TypeStr      Type = "str"
	TypeDstr     Type = "dstr"
	TypeXstr     Type = "xstr"
	TypeSym      Type = "sym"
	TypeDsym     Type = "dsym"
	TypeRegexp   Type = "regexp"
	TypeRegopt   Type = "regopt"
	TypeArray    Type = "array"
	TypeHash     Type = "hash"
	TypePair     Type = "pair"
	TypeKwsplat  Type = "kwsplat"
	TypeIrange   Type = "irange"
	TypeErange   Type = "erange"
	TypeTrue     Type = "true"
	TypeFalse    Type = "false"
	TypeNil      Type = "nil"
	TypeSelf     Type = "self"
	TypeEmpty    Type = "empty"

	// Variables and constants
	TypeLvar    Type = "lvar"
	TypeIvar    Type = "ivar"
	TypeGvar    Type = "gvar"
	TypeCvar    Type = "cvar"
	TypeConst   Type = "const"
	TypeCbase   Type = "cbase"
	TypeNthRef  Type = "nth_ref"
	TypeBackRef Type = "back_ref"

	// Assignment
	TypeLvasgn  Type = "lvasgn"
	TypeIvasgn  Type = "ivasgn"
	TypeGvasgn  Type = "gvasgn"
	TypeCvasgn  Type = "cvasgn"
	TypeCasgn   Type = "casgn"
	TypeMasgn   Type = "masgn"
	TypeMlhs    Type = "mlhs"
	TypeOpAsgn  Type = "op_asgn"
	TypeOrAsgn  Type = "or_asgn"
	TypeAndAsgn Type = "and_asgn"
	TypeSplat   Type = "splat"

	// Sends
	TypeSend      Type = "send"
	TypeCsend     Type = "csend"
	TypeSuper     Type = "super"
	TypeZsuper    Type = "zsuper"
	TypeYield     Type = "yield"
	TypeDefined   Type = "defined?"
	TypeBlock     Type = "block"
	TypeBlockPass Type = "block_pass"

	// Arguments
	TypeArgs      Type = "args"
	TypeArg       Type = "arg"
	TypeOptarg    Type = "optarg"
	TypeRestarg   Type = "restarg"
	TypeBlockarg  Type = "blockarg"
	TypeKwarg     Type = "kwarg"
	TypeKwoptarg  Type = "kwoptarg"
	TypeKwrestarg Type = "kwrestarg"
	TypeShadowarg Type = "shadowarg"

	// Control flow
	TypeIf               Type = "if"
	TypeCase             Type = "case"
	TypeWhen             Type = "when"
	TypeWhile            Type = "while"
	TypeUntil            Type = "until"
	TypeWhilePost        Type = "while_post"
	TypeUntilPost        Type = "until_post"
	TypeFor              Type = "for"
	TypeAnd              Type = "and"
	TypeOr               Type = "or"
	TypeBreak            Type = "break"
	TypeNext             Type = "next"
	TypeRedo             Type = "redo"
	TypeRetry            Type = "retry"
	TypeReturn           Type = "return"
	TypeIflipflop        Type = "iflipflop"
	TypeEflipflop        Type = "eflipflop"
	TypeMatchCurrentLine Type = "match_current_line"
	TypeMatchWithLvasgn  Type = "match_with_lvasgn"

	// Definitions
	TypeDef     Type = "def"
	TypeDefs    Type = "defs"
	TypeClass   Type = "class"
	TypeSclass  Type = "sclass"
	TypeModule  Type = "module"
	TypeAlias   Type = "alias"
	TypeUndef   Type = "undef"
	TypePreexe  Type = "preexe"
	TypePostexe Type = "postexe"

	// Statement sequences and exceptions
	TypeBegin   Type = "begin"
	TypeKwbegin Type = "kwbegin"
	TypeRescue  Type = "rescue"
	TypeResbody Type = "resbody"
	TypeEnsure  Type = "ensure"
)

// Types lists every node type of the grammar, in declaration order.
func Types() []Type {
	return []Type{
		TypeInt, TypeFloat, TypeRational, TypeComplex, TypeStr, TypeDstr,
		TypeXstr, TypeSym, TypeDsym, TypeRegexp, TypeRegopt, TypeArray,
		TypeHash, TypePair, TypeKwsplat, TypeIrange, TypeErange, TypeTrue,
		TypeFalse, TypeNil, TypeSelf, TypeEmpty,
		TypeLvar, TypeIvar, TypeGvar, TypeCvar, TypeConst, TypeCbase,
		TypeNthRef, TypeBackRef,
		TypeLvasgn, TypeIvasgn, TypeGvasgn, TypeCvasgn, TypeCasgn, TypeMasgn,
		TypeMlhs, TypeOpAsgn, TypeOrAsgn, TypeAndAsgn, TypeSplat,
		TypeSend, TypeCsend, TypeSuper, TypeZsuper, TypeYield, TypeDefined,
		TypeBlock, TypeBlockPass,
		TypeArgs, TypeArg, TypeOptarg, TypeRestarg, TypeBlockarg, TypeKwarg,
		TypeKwoptarg, TypeKwrestarg, TypeShadowarg,
		TypeIf, TypeCase, TypeWhen, TypeWhile, TypeUntil, TypeWhilePost,
		TypeUntilPost, TypeFor, TypeAnd, TypeOr, TypeBreak, TypeNext,
		TypeRedo, TypeRetry, TypeReturn, TypeIflipflop, TypeEflipflop,
		TypeMatchCurrentLine, TypeMatchWithLvasgn,
		TypeDef, TypeDefs, TypeClass, TypeSclass, TypeModule, TypeAlias,
		TypeUndef, TypePreexe, TypePostexe,
		TypeBegin, TypeKwbegin, TypeRescue, TypeResbody, TypeEnsure,
	}
}
