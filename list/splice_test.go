package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillList(l *List[Int], values ...int) {
	for _, v := range values {
		l.PushBack(&Int{Value: v})
	}
}

func TestSpliceAllToEnd(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 1, 2)
	fillList(b, 3, 4)

	a.Splice(a.End(), b)

	checkIntegrity(t, a, 1, 2, 3, 4)
	checkIntegrity(t, b)
}

func TestSpliceAllToBegin(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 3, 4)
	fillList(b, 1, 2)

	a.Splice(a.Begin(), b)

	checkIntegrity(t, a, 1, 2, 3, 4)
	checkIntegrity(t, b)
}

func TestSpliceToMiddle(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 1, 4)
	fillList(b, 2, 3)

	a.Splice(a.Begin().Next(), b)

	checkIntegrity(t, a, 1, 2, 3, 4)
	checkIntegrity(t, b)
}

func TestSpliceEmptySource(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 1, 2)

	a.Splice(a.End(), b)

	checkIntegrity(t, a, 1, 2)
	checkIntegrity(t, b)
}

func TestSpliceIntoEmpty(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(b, 1, 2)

	a.Splice(a.End(), b)

	checkIntegrity(t, a, 1, 2)
	checkIntegrity(t, b)
}

func TestSpliceSelfIsNoop(t *testing.T) {
	a := new(List[Int])
	fillList(a, 1, 2, 3)

	a.Splice(a.Begin(), a)

	checkIntegrity(t, a, 1, 2, 3)
}

func TestSpliceKeepsElementsLinked(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	x := &Int{Value: 1}
	b.PushBack(x)

	a.Splice(a.End(), b)

	require.True(t, x.Linked())
	require.Same(t, x, a.Front())
}

func TestSpliceRangePartial(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 1, 5)
	fillList(b, 2, 3, 4, 9)

	// Move [2 3 4], leaving 9 behind.
	first := b.Begin()
	last := b.End().Prev()
	a.SpliceRange(a.Begin().Next(), b, first, last)

	checkIntegrity(t, a, 1, 2, 3, 4, 5)
	checkIntegrity(t, b, 9)
}

func TestSpliceCellSingle(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 1, 3)
	fillList(b, 9, 2)

	a.SpliceCell(a.Begin().Next(), b, b.End().Prev())

	checkIntegrity(t, a, 1, 2, 3)
	checkIntegrity(t, b, 9)
}

func TestSpliceCellEndIsNoop(t *testing.T) {
	a, b := new(List[Int]), new(List[Int])
	fillList(a, 1)
	fillList(b, 2)

	a.SpliceCell(a.End(), b, b.End())

	checkIntegrity(t, a, 1)
	checkIntegrity(t, b, 2)
}

func TestExtractFrontPartial(t *testing.T) {
	src, dst := new(List[Int]), new(List[Int])
	fillList(src, 1, 2, 3, 4, 5)

	n := src.ExtractFront(dst, 2)

	require.Equal(t, 2, n)
	checkIntegrity(t, dst, 1, 2)
	checkIntegrity(t, src, 3, 4, 5)
}

func TestExtractFrontAll(t *testing.T) {
	src, dst := new(List[Int]), new(List[Int])
	fillList(src, 1, 2, 3)

	n := src.ExtractFront(dst, 10)

	require.Equal(t, 3, n)
	checkIntegrity(t, dst, 1, 2, 3)
	checkIntegrity(t, src)
}

func TestExtractFrontZero(t *testing.T) {
	src, dst := new(List[Int]), new(List[Int])
	fillList(src, 1, 2)

	n := src.ExtractFront(dst, 0)

	require.Equal(t, 0, n)
	checkIntegrity(t, dst)
	checkIntegrity(t, src, 1, 2)
}

func TestExtractFrontFromEmpty(t *testing.T) {
	src, dst := new(List[Int]), new(List[Int])

	n := src.ExtractFront(dst, 3)

	require.Equal(t, 0, n)
	checkIntegrity(t, dst)
	checkIntegrity(t, src)
}

func TestExtractFrontAppendsToDestination(t *testing.T) {
	src, dst := new(List[Int]), new(List[Int])
	fillList(src, 3, 4)
	fillList(dst, 1, 2)

	n := src.ExtractFront(dst, 2)

	require.Equal(t, 2, n)
	checkIntegrity(t, dst, 1, 2, 3, 4)
	checkIntegrity(t, src)
}

func TestExtractThenRefillBatches(t *testing.T) {
	src, dst := new(List[Int]), new(List[Int])
	fillList(src, 1, 2, 3, 4, 5, 6, 7)

	total := 0
	for {
		n := src.ExtractFront(dst, 3)
		if n == 0 {
			break
		}
		total += n
	}

	require.Equal(t, 7, total)
	checkIntegrity(t, dst, 1, 2, 3, 4, 5, 6, 7)
	checkIntegrity(t, src)
}
