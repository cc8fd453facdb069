package unparser

import "github.com/dhamidi/unparser/ruby/ast"

const (
	kAlias   = "alias"
	kAnd     = "&&"
	kBegin   = "begin"
	kBreak   = "break"
	kCase    = "case"
	kClass   = "class"
	kDef     = "def"
	kDefined = "defined?"
	kDo      = "do"
	kElse    = "else"
	kElsif   = "elsif"
	kEnd     = "end"
	kEnsure  = "ensure"
	kFor     = "for"
	kIf      = "if"
	kIn      = "in"
	kModule  = "module"
	kNext    = "next"
	kOr      = "||"
	kPostexe = "END"
	kPreexe  = "BEGIN"
	kRedo    = "redo"
	kRescue  = "rescue"
	kRetry   = "retry"
	kReturn  = "return"
	kSuper   = "super"
	kUndef   = "undef"
	kUnless  = "unless"
	kUntil   = "until"
	kWhen    = "when"
	kWhile   = "while"
	kYield   = "yield"
)

const delimiter = ", "

// terminatedTypes says, per node type, whether the emitted text is an
// unambiguous expression that can be embedded anywhere without
// parentheses. send and csend depend on the form of the call; their entry
// here is overridden by sendTerminated.
var terminatedTypes = map[ast.Type]bool{
	ast.TypeInt:      true,
	ast.TypeFloat:    true,
	ast.TypeRational: true,
	ast.TypeComplex:  true,
	ast.TypeStr:      true,
	ast.TypeDstr:     true,
	ast.TypeXstr:     true,
	ast.TypeSym:      true,
	ast.TypeDsym:     true,
	ast.TypeRegexp:   true,
	ast.TypeRegopt:   false,
	ast.TypeArray:    true,
	ast.TypeHash:     true,
	ast.TypePair:     false,
	ast.TypeKwsplat:  false,
	ast.TypeIrange:   false,
	ast.TypeErange:   false,
	ast.TypeTrue:     true,
	ast.TypeFalse:    true,
	ast.TypeNil:      true,
	ast.TypeSelf:     true,
	ast.TypeEmpty:    true,

	ast.TypeLvar:    true,
	ast.TypeIvar:    true,
	ast.TypeGvar:    true,
	ast.TypeCvar:    true,
	ast.TypeConst:   true,
	ast.TypeCbase:   true,
	ast.TypeNthRef:  true,
	ast.TypeBackRef: true,

	ast.TypeLvasgn:  false,
	ast.TypeIvasgn:  false,
	ast.TypeGvasgn:  false,
	ast.TypeCvasgn:  false,
	ast.TypeCasgn:   false,
	ast.TypeMasgn:   false,
	ast.TypeMlhs:    false,
	ast.TypeOpAsgn:  false,
	ast.TypeOrAsgn:  false,
	ast.TypeAndAsgn: false,
	ast.TypeSplat:   false,

	ast.TypeSend:      true,
	ast.TypeCsend:     true,
	ast.TypeSuper:     true,
	ast.TypeZsuper:    true,
	ast.TypeYield:     true,
	ast.TypeDefined:   true,
	ast.TypeBlock:     true,
	ast.TypeBlockPass: false,

	ast.TypeArgs:      true,
	ast.TypeArg:       false,
	ast.TypeOptarg:    false,
	ast.TypeRestarg:   false,
	ast.TypeBlockarg:  false,
	ast.TypeKwarg:     false,
	ast.TypeKwoptarg:  false,
	ast.TypeKwrestarg: false,
	ast.TypeShadowarg: false,

	ast.TypeIf:               true,
	ast.TypeCase:             true,
	ast.TypeWhen:             false,
	ast.TypeWhile:            true,
	ast.TypeUntil:            true,
	ast.TypeWhilePost:        false,
	ast.TypeUntilPost:        false,
	ast.TypeFor:              true,
	ast.TypeAnd:              false,
	ast.TypeOr:               false,
	ast.TypeBreak:            true,
	ast.TypeNext:             true,
	ast.TypeRedo:             true,
	ast.TypeRetry:            true,
	ast.TypeReturn:           true,
	ast.TypeIflipflop:        false,
	ast.TypeEflipflop:        false,
	ast.TypeMatchCurrentLine: true,
	ast.TypeMatchWithLvasgn:  false,

	ast.TypeDef:     true,
	ast.TypeDefs:    true,
	ast.TypeClass:   true,
	ast.TypeSclass:  true,
	ast.TypeModule:  true,
	ast.TypeAlias:   false,
	ast.TypeUndef:   false,
	ast.TypePreexe:  false,
	ast.TypePostexe: false,

	ast.TypeBegin:   true,
	ast.TypeKwbegin: true,
	ast.TypeRescue:  false,
	ast.TypeResbody: false,
	ast.TypeEnsure:  false,
}

// conditionallyTerminated lists the types whose terminated flag depends on
// the node rather than only on its type.
var conditionallyTerminated = map[ast.Type]bool{
	ast.TypeSend:  true,
	ast.TypeCsend: true,
}

// noIndent lists body types that manage their own indentation relative to
// the construct holding them.
var noIndent = map[ast.Type]bool{
	ast.TypeRescue: true,
	ast.TypeEnsure: true,
}

// bodyHolders are the constructs whose body may carry rescue and ensure
// clauses directly.
var bodyHolders = map[ast.Type]bool{
	ast.TypeKwbegin: true,
	ast.TypeDef:     true,
	ast.TypeDefs:    true,
	ast.TypeBlock:   true,
	ast.TypeEnsure:  true,
	ast.TypeClass:   true,
	ast.TypeSclass:  true,
	ast.TypeModule:  true,
}

// Operator precedence, higher binds tighter.
const (
	precRange = 4 + iota
	precOr
	precAnd
	precEquality
	precComparison
	precBitOr
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
	precUnaryMinus
	precPower
	precUnary
)

type associativity int

const (
	assocLeft associativity = iota
	assocRight
	assocNone
)

type operator struct {
	prec  int
	assoc associativity
}

var binaryOperators = map[ast.Symbol]operator{
	"**":  {precPower, assocRight},
	"*":   {precMultiplicative, assocLeft},
	"/":   {precMultiplicative, assocLeft},
	"%":   {precMultiplicative, assocLeft},
	"+":   {precAdditive, assocLeft},
	"-":   {precAdditive, assocLeft},
	"<<":  {precShift, assocLeft},
	">>":  {precShift, assocLeft},
	"&":   {precBitAnd, assocLeft},
	"|":   {precBitOr, assocLeft},
	"^":   {precBitOr, assocLeft},
	">":   {precComparison, assocLeft},
	">=":  {precComparison, assocLeft},
	"<":   {precComparison, assocLeft},
	"<=":  {precComparison, assocLeft},
	"<=>": {precEquality, assocNone},
	"==":  {precEquality, assocNone},
	"===": {precEquality, assocNone},
	"!=":  {precEquality, assocNone},
	"=~":  {precEquality, assocNone},
	"!~":  {precEquality, assocNone},
}

// unaryOperators maps the method name of a unary send to the operator
// written in source.
var unaryOperators = map[ast.Symbol]string{
	"!":  "!",
	"~":  "~",
	"-@": "-",
	"+@": "+",
}

var unaryPrecedence = map[ast.Symbol]int{
	"!":  precUnary,
	"~":  precUnary,
	"+@": precUnary,
	"-@": precUnaryMinus,
}

var keywordOperators = map[ast.Type]operator{
	ast.TypeAnd:    {precAnd, assocLeft},
	ast.TypeOr:     {precOr, assocLeft},
	ast.TypeIrange: {precRange, assocNone},
	ast.TypeErange: {precRange, assocNone},
}

var assignmentOperators = map[ast.Type]string{
	ast.TypeOrAsgn:  "||=",
	ast.TypeAndAsgn: "&&=",
}
