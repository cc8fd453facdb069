package unparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/unparser/ruby/ast"
)

func unparseSexp(t *testing.T, sexp string) string {
	t.Helper()
	out, err := Unparse(ast.MustParse(sexp), nil)
	require.NoError(t, err)
	return out
}

func TestUnparseEmpty(t *testing.T) {
	out, err := Unparse(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	out, err = Unparse(ast.New(ast.TypeEmpty), nil)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestUnparseLiterals(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"int", "(int 1)", "1"},
		{"negative int", "(int -5)", "-5"},
		{"big int", "(int 123456789012345678901234567890)", "123456789012345678901234567890"},
		{"float", "(float 1.5)", "1.5"},
		{"whole float", "(float 100.0)", "100.0"},
		{"infinity", "(float Inf)", "Float::INFINITY"},
		{"nan", "(float NaN)", "Float::NAN"},
		{"rational", "(rational 3)", "3r"},
		{"complex", `(complex "2")`, "2i"},
		{"string", `(str "foo")`, `"foo"`},
		{"string with quote", `(str "a\"b")`, `"a\"b"`},
		{"string with interpolation text", `(str "#{x}")`, `"\#{x}"`},
		{"symbol", "(sym :foo)", ":foo"},
		{"operator symbol", "(sym :<=>)", ":<=>"},
		{"quoted symbol", `(sym :"foo bar")`, `:"foo bar"`},
		{"dstr", `(dstr (str "a") (begin (lvar :b)) (str "c"))`, `"a#{b}c"`},
		{"dstr short interpolation", `(dstr (ivar :@a) (str " x"))`, `"#@a x"`},
		{"dstr ambiguous short interpolation", `(dstr (ivar :@a) (str "x"))`, `"#{@a}x"`},
		{"dstr empty interpolation", `(dstr (str "a") (begin))`, `"a#{}"`},
		{"dsym", `(dsym (str "a") (begin (lvar :b)))`, `:"a#{b}"`},
		{"xstr", "(xstr (str \"ls `x`\"))", "`ls \\`x\\``"},
		{"regexp", `(regexp (str "a/b") (regopt :i :m))`, `/a\/b/im`},
		{"regexp interpolation", `(regexp (str "a") (begin (lvar :b)) (regopt))`, `/a#{b}/`},
		{"split hash before brace", `(dstr (str "#") (str "{x}"))`, `"\#{x}"`},
		{"split hash before ivar", `(dstr (str "#") (str "@x"))`, `"\#@x"`},
		{"split hash in nested dstr", `(dstr (dstr (str "a#")) (str "$x") (begin (lvar :b)))`, `"a\#$x#{b}"`},
		{"hash before short interpolation", `(dstr (str "#") (ivar :@a) (str " "))`, `"##@a "`},
		{"regexp static interpolation text", `(regexp (str "#{a}") (str "#") (str "@b") (regopt))`, `/\#{a}\#@b/`},
		{"array", "(array (int 1) (splat (lvar :a)))", "[1, *a]"},
		{"empty array", "(array)", "[]"},
		{"hash", "(hash (pair (sym :a) (int 1)) (kwsplat (lvar :h)))", "{ :a => 1, **h }"},
		{"empty hash", "(hash)", "{}"},
		{"irange", "(irange (int 1) (int 10))", "1..10"},
		{"endless erange", "(erange (int 1) nil)", "1..."},
		{"range of sums", "(irange (send (lvar :a) :+ (int 1)) (lvar :b))", "a + 1..b"},
		{"range of range", "(irange (irange (int 1) (int 2)) (int 3))", "(1..2)..3"},
		{"keywords", "(array (true) (false) (nil) (self))", "[true, false, nil, self]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseVariables(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"lvar", "(lvar :a)", "a"},
		{"ivar", "(ivar :@a)", "@a"},
		{"gvar", "(gvar :$a)", "$a"},
		{"cvar", "(cvar :@@a)", "@@a"},
		{"const", "(const nil :Foo)", "Foo"},
		{"scoped const", "(const (const nil :Foo) :Bar)", "Foo::Bar"},
		{"top const", "(const (cbase) :Foo)", "::Foo"},
		{"const on expression", "(const (send nil :foo) :Bar)", "foo::Bar"},
		{"nth_ref", "(nth_ref 1)", "$1"},
		{"back_ref", "(back_ref :$&)", "$&"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseAssignments(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"lvasgn", "(lvasgn :x (send (lvar :a) :+ (int 1)))", "x = a + 1"},
		{"ivasgn", "(ivasgn :@x (int 1))", "@x = 1"},
		{"casgn", "(casgn nil :FOO (int 1))", "FOO = 1"},
		{"scoped casgn", "(casgn (const nil :A) :FOO (int 1))", "A::FOO = 1"},
		{"assignment as operand", "(send (lvasgn :x (int 1)) :+ (int 2))", "(x = 1) + 2"},
		{"masgn", "(masgn (mlhs (lvasgn :a) (lvasgn :b)) (array (int 1) (int 2)))", "a, b = 1, 2"},
		{"masgn from array literal", "(masgn (mlhs (lvasgn :a) (lvasgn :b)) (array (int 1)))", "a, b = [1]"},
		{"masgn from splat", "(masgn (mlhs (lvasgn :a) (lvasgn :b)) (array (splat (lvar :c))))", "a, b = *c"},
		{"single target", "(masgn (mlhs (lvasgn :a)) (lvar :c))", "a, = c"},
		{"splat target", "(masgn (mlhs (splat (lvasgn :a))) (lvar :c))", "*a = c"},
		{"nested targets", "(masgn (mlhs (mlhs (lvasgn :a) (lvasgn :b)) (lvasgn :c)) (lvar :d))", "(a, b), c = d"},
		{"attribute target", "(masgn (mlhs (send (self) :a=) (send (lvar :x) :[]= (int 0))) (lvar :d))", "self.a, x[0] = d"},
		{"op_asgn", "(op_asgn (lvasgn :a) :+ (int 1))", "a += 1"},
		{"op_asgn attribute", "(op_asgn (send (lvar :a) :b) :* (int 2))", "a.b *= 2"},
		{"op_asgn index", "(op_asgn (send (lvar :a) :[] (int 0)) :- (int 2))", "a[0] -= 2"},
		{"or_asgn", "(or_asgn (ivasgn :@a) (int 1))", "@a ||= 1"},
		{"and_asgn", "(and_asgn (lvasgn :a) (lvar :b))", "a &&= b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseSends(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"higher precedence on the right", "(send (lvar :a) :+ (send (lvar :b) :* (lvar :c)))", "a + b * c"},
		{"lower precedence on the left", "(send (send (lvar :a) :+ (lvar :b)) :* (lvar :c))", "(a + b) * c"},
		{"left associative", "(send (send (lvar :a) :- (lvar :b)) :- (lvar :c))", "a - b - c"},
		{"left associative, right nested", "(send (lvar :a) :- (send (lvar :b) :- (lvar :c)))", "a - (b - c)"},
		{"power right nested", "(send (lvar :a) :** (send (lvar :b) :** (lvar :c)))", "a ** b ** c"},
		{"power left nested", "(send (send (lvar :a) :** (lvar :b)) :** (lvar :c))", "(a ** b) ** c"},
		{"negative base", "(send (int -2) :** (int 2))", "(-2) ** 2"},
		{"negated base", "(send (send (lvar :a) :-@) :** (int 2))", "(-a) ** 2"},
		{"negated power", "(send (send (lvar :a) :** (int 2)) :-@)", "-a ** 2"},
		{"negated literal", "(send (int 1) :-@)", "-(1)"},
		{"not", "(send (lvar :a) :!)", "!a"},
		{"not of sum", "(send (send (lvar :a) :+ (lvar :b)) :!)", "!(a + b)"},
		{"double not", "(send (send (lvar :a) :!) :!)", "!!a"},
		{"not of call", "(send (send (lvar :a) :b) :!)", "!a.b"},
		{"non associative equality", "(send (send (lvar :a) :== (lvar :b)) :== (lvar :c))", "(a == b) == c"},
		{"unary in product", "(send (send (lvar :a) :-@) :* (lvar :b))", "-a * b"},
		{"and binds tighter than or", "(or (lvar :a) (and (lvar :b) (lvar :c)))", "a || b && c"},
		{"or inside and", "(and (lvar :a) (or (lvar :b) (lvar :c)))", "a && (b || c)"},
		{"comparison in and", "(and (send (lvar :a) :> (int 1)) (lvar :b))", "a > 1 && b"},
		{"unary receiver", "(send (send (lvar :a) :-@) :abs)", "(-a).abs"},
		{"binary receiver", "(send (send (lvar :a) :+ (int 1)) :to_s)", "(a + 1).to_s"},
		{"call chain", "(send (send (lvar :a) :b) :c (int 1))", "a.b.c(1)"},
		{"arguments", "(send nil :foo (int 1) (splat (lvar :a)) (block_pass (lvar :blk)))", "foo(1, *a, &blk)"},
		{"bare call", "(send nil :foo)", "foo"},
		{"capitalized call", "(send nil :Foo)", "Foo()"},
		{"operator method call", "(send (lvar :a) :+ (int 1) (int 2))", "a.+(1, 2)"},
		{"index", "(send (lvar :a) :[] (int 1) (int 2))", "a[1, 2]"},
		{"index assignment", "(send (lvar :a) :[]= (int 1) (int 2))", "a[1] = 2"},
		{"attribute assignment", "(send (lvar :a) :foo= (int 1))", "a.foo = 1"},
		{"self attribute assignment", "(send nil :foo= (int 1))", "self.foo = 1"},
		{"safe navigation", "(csend (lvar :a) :foo (int 1))", "a&.foo(1)"},
		{"safe attribute assignment", "(csend (lvar :a) :foo= (int 1))", "a&.foo = 1"},
		{"hash argument", "(send nil :foo (hash (pair (sym :a) (int 1))))", "foo({ :a => 1 })"},
		{"super", "(super (int 1))", "super(1)"},
		{"super without arguments", "(super)", "super()"},
		{"zsuper", "(zsuper)", "super"},
		{"yield", "(yield)", "yield"},
		{"yield arguments", "(yield (int 1) (lvar :a))", "yield(1, a)"},
		{"defined?", "(defined? (ivar :@a))", "defined?(@a)"},
		{"match_with_lvasgn", `(match_with_lvasgn (regexp (str "(?<a>x)") (regopt)) (lvar :s))`, `/(?<a>x)/ =~ s`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseControlFlow(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"modifier if", "(if (lvar :a) (send nil :b) nil)", "b if a"},
		{"modifier unless", "(if (lvar :a) nil (send nil :b))", "b unless a"},
		{"if else", "(if (lvar :a) (send nil :b) (send nil :c))", "if a\n  b\nelse\n  c\nend"},
		{"elsif", "(if (lvar :a) (int 1) (if (lvar :b) (int 2) (int 3)))", "if a\n  1\nelsif b\n  2\nelse\n  3\nend"},
		{"if with statements", "(if (lvar :a) (begin (send nil :b) (send nil :c)) nil)", "if a\n  b\n  c\nend"},
		{"if without branches", "(if (lvar :a) nil nil)", "if a\nend"},
		{"if as value", "(lvasgn :x (if (lvar :a) (int 1) nil))", "x = if a\n  1\nend"},
		{"if around assigned if", "(if (lvar :c) (lvasgn :x (if (lvar :a) (int 1) nil)) nil)", "if c\n  x = if a\n    1\n  end\nend"},
		{"if around op-assigned case", "(if (lvar :c) (or_asgn (ivasgn :@x) (case (lvar :a) (when (int 1) (int 2)) nil)) nil)", "if c\n  @x ||= case a\n  when 1\n    2\n  end\nend"},
		{"modifier if around assignment", "(if (lvar :c) (lvasgn :x (int 1)) nil)", "x = 1 if c"},
		{"case", "(case (lvar :x) (when (int 1) (int 2) (send nil :a)) (when (splat (lvar :l)) nil) (send nil :b))",
			"case x\nwhen 1, 2\n  a\nwhen *l\nelse\n  b\nend"},
		{"case without subject", "(case nil (when (lvar :a) (int 1)) nil)", "case\nwhen a\n  1\nend"},
		{"while", "(while (lvar :a) (send nil :b))", "while a\n  b\nend"},
		{"until", "(until (lvar :a) nil)", "until a\nend"},
		{"while_post", "(while_post (lvar :a) (kwbegin (send nil :b)))", "begin\n  b\nend while a"},
		{"until_post", "(until_post (lvar :a) (kwbegin (send nil :b)))", "begin\n  b\nend until a"},
		{"for", "(for (lvasgn :i) (irange (int 1) (int 3)) (send nil :p (lvar :i)))", "for i in 1..3\n  p(i)\nend"},
		{"for with targets", "(for (mlhs (lvasgn :k) (lvasgn :v)) (lvar :h) nil)", "for k, v in h\nend"},
		{"break", "(break)", "break"},
		{"next value", "(next (int 1))", "next(1)"},
		{"break values", "(break (int 1) (int 2))", "break 1, 2"},
		{"return", "(return (lvar :a))", "return(a)"},
		{"return values", "(return (int 1) (int 2))", "return 1, 2"},
		{"redo", "(redo)", "redo"},
		{"retry", "(retry)", "retry"},
		{"flipflop", "(if (iflipflop (lvar :a) (lvar :b)) (send nil :c) nil)", "c if a..b"},
		{"exclusive flipflop", "(if (eflipflop (send (lvar :a) :== (int 1)) (lvar :b)) (send nil :c) nil)", "c if (a == 1)...b"},
		{"match current line", `(if (match_current_line (regexp (str "x") (regopt))) (send nil :c) nil)`, "c if /x/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"def without parameters", "(def :foo (args) nil)", "def foo\nend"},
		{"def", "(def :foo (args (arg :a) (optarg :b (int 1)) (restarg :c) (kwarg :d) (kwoptarg :e (int 2)) (kwrestarg :f) (blockarg :g)) (lvar :a))",
			"def foo(a, b = 1, *c, d:, e: 2, **f, &g)\n  a\nend"},
		{"anonymous rest", "(def :foo (args (restarg) (kwrestarg)) nil)", "def foo(*, **)\nend"},
		{"defs", "(defs (self) :foo (args) nil)", "def self.foo\nend"},
		{"defs on expression", "(defs (send nil :x) :foo (args (arg :a)) nil)", "def (x).foo(a)\nend"},
		{"class", "(class (const nil :Foo) (const nil :Bar) (def :a (args) nil))", "class Foo < Bar\n  def a\n  end\nend"},
		{"class without superclass", "(class (const nil :Foo) nil nil)", "class Foo\nend"},
		{"sclass", "(sclass (self) (def :a (args) nil))", "class << self\n  def a\n  end\nend"},
		{"module", "(module (const (const nil :A) :B) nil)", "module A::B\nend"},
		{"alias", "(alias (sym :a) (sym :b))", "alias :a :b"},
		{"alias globals", "(alias (gvar :$a) (gvar :$b))", "alias $a $b"},
		{"undef", "(undef (sym :a) (sym :b))", "undef :a, :b"},
		{"BEGIN", "(preexe (send nil :a))", "BEGIN {\n  a\n}"},
		{"END", "(postexe nil)", "END {\n}"},
		{"block", "(block (send nil :each) (args (arg :x)) (send nil :p (lvar :x)))", "each do |x|\n  p(x)\nend"},
		{"block without parameters", "(block (send (lvar :a) :tap) (args) nil)", "a.tap do\nend"},
		{"block locals", "(block (send nil :foo) (args (arg :a) (shadowarg :b)) nil)", "foo do |a; b|\nend"},
		{"block destructuring", "(block (send nil :foo) (args (mlhs (arg :a) (arg :b)) (arg :c)) nil)", "foo do |(a, b), c|\nend"},
		{"block chained", "(send (block (send nil :foo) (args) nil) :bar)", "foo do\nend.bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseExceptions(t *testing.T) {
	tests := []struct {
		name     string
		sexp     string
		expected string
	}{
		{"statements", "(begin (send nil :a) (send nil :b))", "a\nb"},
		{"parenthesized", "(lvasgn :x (begin (int 1)))", "x = (1)"},
		{"parenthesized statements", "(lvasgn :x (begin (send nil :a) (send nil :b)))", "x = (a; b)"},
		{"nested statements", "(begin (begin (send nil :a) (send nil :b)) (send nil :c))", "(a; b)\nc"},
		{"kwbegin", "(kwbegin (send nil :a) (send nil :b))", "begin\n  a\n  b\nend"},
		{"empty kwbegin", "(kwbegin)", "begin\nend"},
		{"rescue", "(kwbegin (rescue (send nil :a) (resbody (array (const nil :Error)) (lvasgn :e) (send nil :b)) nil))",
			"begin\n  a\nrescue Error => e\n  b\nend"},
		{"rescue several", "(kwbegin (rescue (send nil :a) (resbody (array (const nil :A) (const nil :B)) nil nil) (resbody nil nil (retry)) (send nil :c)))",
			"begin\n  a\nrescue A, B\nrescue\n  retry\nelse\n  c\nend"},
		{"rescue without body", "(kwbegin (rescue nil (resbody nil nil nil) nil))", "begin\nrescue\nend"},
		{"ensure", "(kwbegin (ensure (send nil :a) (send nil :b)))", "begin\n  a\nensure\n  b\nend"},
		{"rescue and ensure", "(kwbegin (ensure (rescue (send nil :a) (resbody nil nil (send nil :b)) nil) (send nil :c)))",
			"begin\n  a\nrescue\n  b\nensure\n  c\nend"},
		{"def rescue", "(def :foo (args) (rescue (send nil :a) (resbody nil nil (send nil :b)) nil))",
			"def foo\n  a\nrescue\n  b\nend"},
		{"block ensure", "(block (send nil :foo) (args) (ensure (send nil :a) (send nil :b)))",
			"foo do\n  a\nensure\n  b\nend"},
		{"rescue modifier", "(rescue (send nil :a) (resbody nil nil (send nil :b)) nil)", "a rescue b"},
		{"rescue modifier value", "(lvasgn :x (rescue (send nil :a) (resbody nil nil (nil)) nil))", "x = a rescue nil"},
		{"rescue outside body", "(lvasgn :x (rescue (send nil :a) (resbody (array (const nil :E)) nil (int 1)) nil))",
			"x = begin\n  a\nrescue E\n  1\nend"},
		{"rescue operand", "(send (rescue (send nil :a) (resbody nil nil (int 1)) nil) :+ (int 2))", "(a rescue 1) + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unparseSexp(t, tt.sexp))
		})
	}
}

func TestUnparseNesting(t *testing.T) {
	sexp := `(module (const nil :M)
	  (class (const nil :C) nil
	    (begin
	      (def :a (args (arg :x))
	        (if (lvar :x)
	          (block (send (lvar :x) :each) (args (arg :y))
	            (case (lvar :y)
	              (when (int 1) (while (true) (break)))
	              nil))
	          nil))
	      (def :b (args) (kwbegin (rescue (int 1) (resbody nil nil (int 2)) nil))))))`
	expected := `module M
  class C
    def a(x)
      if x
        x.each do |y|
          case y
          when 1
            while true
              break
            end
          end
        end
      end
    end
    def b
      begin
        1
      rescue
        2
      end
    end
  end
end`
	assert.Equal(t, expected, unparseSexp(t, sexp))
}

func TestUnparseErrors(t *testing.T) {
	t.Run("unsupported root", func(t *testing.T) {
		out, err := Unparse(ast.New("frobnicate"), nil)
		var unsupported *UnsupportedNodeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, ast.Type("frobnicate"), unsupported.Type)
		assert.Equal(t, "", out)
	})

	t.Run("unsupported nested", func(t *testing.T) {
		out, err := Unparse(ast.MustParse("(begin (send nil :a) (send nil :foo (frob)))"), nil)
		var unsupported *UnsupportedNodeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, ast.Type("frob"), unsupported.Type)
		assert.Contains(t, err.Error(), `"frob"`)
		assert.Equal(t, "", out)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Unparse(ast.MustParse("(lvasgn 1)"), nil)
		assert.ErrorIs(t, err, ErrMalformedNode)
		var internal *InternalError
		assert.ErrorAs(t, err, &internal)
	})

	t.Run("missing child", func(t *testing.T) {
		_, err := Unparse(ast.MustParse("(send nil :+)"), nil)
		require.NoError(t, err)
		_, err = Unparse(ast.MustParse("(while nil nil)"), nil)
		assert.ErrorIs(t, err, ErrMalformedNode)
	})
}

func TestUnparseDeterministic(t *testing.T) {
	node := ast.MustParse("(class (const nil :A) nil (def :f (args (arg :a)) (send (lvar :a) :+ (int 1))))")
	first, err := Unparse(node, nil, WithLogger(commonlog.MOCK_LOGGER))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Unparse(node, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.True(t, strings.HasPrefix(first, "class A\n"))
}

func TestUnparseComments(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		sexp     string
		comments []string
		expected string
	}{
		{
			name:     "end of line",
			source:   "x = 1 # note\n",
			sexp:     "(lvasgn@0..5 :x (int@4..5 1))",
			comments: []string{"# note"},
			expected: "x = 1 # note",
		},
		{
			name:     "leading",
			source:   "# first\n# second\ndef foo\nend\n",
			sexp:     "(def@17..28 :foo (args) nil)",
			comments: []string{"# first", "# second"},
			expected: "# first\n# second\ndef foo\nend",
		},
		{
			name:     "header, body and trailing",
			source:   "def foo # header\n  bar # call\n  # after\nend\n# tail\n",
			sexp:     "(def@0..43 :foo (args) (send@19..22 nil :bar))",
			comments: []string{"# header", "# call", "# after", "# tail"},
			expected: "def foo # header\n  bar # call\n  # after\nend\n# tail",
		},
		{
			name:     "between statements",
			source:   "a\n# mid\nb\n",
			sexp:     "(begin@0..9 (send@0..1 nil :a) (send@8..9 nil :b))",
			comments: []string{"# mid"},
			expected: "a\n# mid\nb",
		},
		{
			name:     "document",
			source:   "=begin\ndoc\n=end\nx = 1\n",
			sexp:     "(lvasgn@16..21 :x (int@20..21 1))",
			comments: []string{"=begin\ndoc\n=end"},
			expected: "=begin\ndoc\n=end\nx = 1",
		},
		{
			name:     "only comments",
			source:   "# one\n# two\n",
			sexp:     "",
			comments: []string{"# one", "# two"},
			expected: "# one\n# two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := []byte(tt.source)
			node, err := ast.Parse(tt.sexp, ast.WithSource(source))
			require.NoError(t, err)
			out, err := Unparse(node, locate(t, tt.source, tt.comments...), WithSource(source))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestUnparseCommentsWithoutSource(t *testing.T) {
	comments := locate(t, "x = 1 # note\n", "# note")
	out, err := Unparse(ast.MustParse("(lvasgn :x (int 1))"), comments)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n# note", out)
}

// Every comment handed to Unparse shows up exactly once and in order,
// whatever the tree looks like.
func TestUnparseConservesComments(t *testing.T) {
	source := "class A # a\n  # b\n  def f(x) # c\n    x + 1 # d\n  end\n  # e\nend # f\n# g\n"
	texts := []string{"# a", "# b", "# c", "# d", "# e", "# f", "# g"}
	comments := locate(t, source, texts...)

	sexps := []string{
		"(class@0..62 (const@6..7 nil :A) nil (def@20..52 :f (args (arg :x)) (send@37..42 (lvar@37..38 :x) :+ (int@41..42 1))))",
		"(class (const nil :A) nil (def :f (args (arg :x)) (send (lvar :x) :+ (int 1))))",
		"(begin@0..62)",
		"",
	}
	for _, sexp := range sexps {
		t.Run(sexp, func(t *testing.T) {
			node, err := ast.Parse(sexp, ast.WithSource([]byte(source)))
			require.NoError(t, err)
			out, err := Unparse(node, comments, WithSource([]byte(source)), WithLogger(commonlog.MOCK_LOGGER))
			require.NoError(t, err)

			pos := 0
			for _, text := range texts {
				assert.Equal(t, 1, strings.Count(out, text), "comment %q in %q", text, out)
				idx := strings.Index(out[pos:], text)
				require.GreaterOrEqual(t, idx, 0, "comment %q out of order in %q", text, out)
				pos += idx + len(text)
			}
		})
	}
}
