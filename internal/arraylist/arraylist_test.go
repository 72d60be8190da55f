package arraylist_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/arraylist/internal/arraylist"
)

type growthLog struct {
	events [][3]int
}

func (g *growthLog) OnGrow(oldCap, newCap, size int) {
	g.events = append(g.events, [3]int{oldCap, newCap, size})
}

type failingSequence struct {
	size   int
	failAt int
}

func (f failingSequence) Get(index int) (string, error) {
	if index == f.failAt {
		return "", errors.New("broken source")
	}
	return fmt.Sprintf("s%d", index), nil
}

func (f failingSequence) Size() int { return f.size }

func contents(l *arraylist.ArrayList[string]) []string {
	return arraylist.Values[string](l)
}

var _ = Describe("ArrayList", func() {
	var list *arraylist.ArrayList[string]

	BeforeEach(func() {
		list = arraylist.New[string]()
	})

	Describe("construction", func() {
		It("starts empty with the default capacity", func() {
			Expect(list.Size()).To(Equal(0))
			Expect(list.IsEmpty()).To(BeTrue())
			Expect(list.Cap()).To(Equal(arraylist.DefaultCapacity))
		})

		It("accepts a positive initial capacity", func() {
			l, err := arraylist.NewWithCapacity[int](3)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Cap()).To(Equal(3))
			Expect(l.Size()).To(Equal(0))
		})

		DescribeTable("rejects non-positive capacities",
			func(capacity int) {
				l, err := arraylist.NewWithCapacity[int](capacity)
				Expect(l).To(BeNil())
				Expect(err).To(MatchError(arraylist.ErrInvalidArgument))
			},
			Entry("zero", 0),
			Entry("negative", -1),
			Entry("very negative", -1000),
		)
	})

	Describe("Add and Get", func() {
		It("returns elements in append order", func() {
			for i := 0; i < 25; i++ {
				list.Add(fmt.Sprintf("v%d", i))
			}
			Expect(list.Size()).To(Equal(25))
			for i := 0; i < 25; i++ {
				v, err := list.Get(i)
				Expect(err).NotTo(HaveOccurred())
				Expect(v).To(Equal(fmt.Sprintf("v%d", i)))
			}
		})

		It("keeps earlier elements intact across a growth event", func() {
			for i := 0; i < arraylist.DefaultCapacity; i++ {
				list.Add(fmt.Sprintf("v%d", i))
			}
			before := contents(list)
			Expect(list.Cap()).To(Equal(arraylist.DefaultCapacity))

			list.Add("overflow")

			Expect(list.Cap()).To(Equal(15))
			Expect(contents(list)[:arraylist.DefaultCapacity]).To(Equal(before))
			Expect(list.Get(arraylist.DefaultCapacity)).To(Equal("overflow"))
		})
	})

	Describe("growth", func() {
		It("grows by half only when the store is full", func() {
			log := &growthLog{}
			list.SetGrowthObserver(log)
			for i := 0; i < 16; i++ {
				list.Add("x")
			}
			Expect(log.events).To(Equal([][3]int{{10, 15, 10}, {15, 22, 15}}))
			Expect(list.Cap()).To(Equal(22))
		})

		It("grows a capacity-one list instead of stalling", func() {
			l, err := arraylist.NewWithCapacity[string](1)
			Expect(err).NotTo(HaveOccurred())
			l.Add("first")
			l.Add("second")
			Expect(l.Size()).To(Equal(2))
			Expect(l.Cap()).To(Equal(2))
			Expect(arraylist.Values[string](l)).To(Equal([]string{"first", "second"}))

			l.Add("third")
			Expect(l.Cap()).To(Equal(3))
			Expect(arraylist.Values[string](l)).To(Equal([]string{"first", "second", "third"}))
		})

		It("grows before a positional insert into a full store", func() {
			l, _ := arraylist.NewWithCapacity[int](2)
			l.Add(1)
			l.Add(3)
			Expect(l.Insert(2, 1)).To(Succeed())
			Expect(l.Cap()).To(Equal(3))
			Expect(arraylist.Values[int](l)).To(Equal([]int{1, 2, 3}))
		})
	})

	Describe("Insert", func() {
		BeforeEach(func() {
			list.Add("a")
			list.Add("b")
			list.Add("c")
		})

		It("shifts later elements right", func() {
			Expect(list.Insert("x", 1)).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"a", "x", "b", "c"}))
			Expect(list.Size()).To(Equal(4))
		})

		It("inserts at the front", func() {
			Expect(list.Insert("x", 0)).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"x", "a", "b", "c"}))
		})

		It("appends when the index equals the size", func() {
			Expect(list.Insert("x", list.Size())).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"a", "b", "c", "x"}))
		})

		DescribeTable("rejects indices outside [0, size]",
			func(index int) {
				err := list.Insert("x", index)
				Expect(err).To(MatchError(arraylist.ErrIndexOutOfBounds))
				Expect(contents(list)).To(Equal([]string{"a", "b", "c"}))
			},
			Entry("negative", -1),
			Entry("size plus one", 4),
			Entry("far beyond", 100),
		)

		It("round-trips with RemoveAt", func() {
			before := contents(list)
			Expect(list.Insert("x", 2)).To(Succeed())
			removed, err := list.RemoveAt(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal("x"))
			Expect(contents(list)).To(Equal(before))
		})
	})

	Describe("AddAll", func() {
		It("appends another list in order", func() {
			list.Add("a")
			other := arraylist.New[string]()
			other.Add("b")
			other.Add("c")
			Expect(list.AddAll(other)).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"a", "b", "c"}))
			Expect(other.Size()).To(Equal(2))
		})

		It("is a no-op for an empty source", func() {
			list.Add("a")
			Expect(list.AddAll(arraylist.SliceSequence[string]{})).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"a"}))
		})

		It("appends a snapshot of itself", func() {
			list.Add("a")
			list.Add("b")
			Expect(list.AddAll(list)).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"a", "b", "a", "b"}))
		})

		It("grows as often as needed", func() {
			src := make(arraylist.SliceSequence[string], 40)
			for i := range src {
				src[i] = fmt.Sprintf("s%d", i)
			}
			Expect(list.AddAll(src)).To(Succeed())
			Expect(contents(list)).To(Equal([]string(src)))
		})

		It("leaves the list unchanged when the source fails", func() {
			list.Add("a")
			err := list.AddAll(failingSequence{size: 5, failAt: 3})
			Expect(err).To(MatchError(ContainSubstring("broken source")))
			Expect(contents(list)).To(Equal([]string{"a"}))
		})
	})

	Describe("Get and Set", func() {
		BeforeEach(func() {
			list.Add("a")
			list.Add("b")
		})

		It("overwrites in place", func() {
			Expect(list.Set("z", 1)).To(Succeed())
			Expect(contents(list)).To(Equal([]string{"a", "z"}))
			Expect(list.Size()).To(Equal(2))
		})

		DescribeTable("bounds",
			func(index int) {
				_, err := list.Get(index)
				Expect(err).To(MatchError(arraylist.ErrIndexOutOfBounds))
				Expect(list.Set("z", index)).To(MatchError(arraylist.ErrIndexOutOfBounds))
				Expect(contents(list)).To(Equal([]string{"a", "b"}))
			},
			Entry("negative", -1),
			Entry("size", 2),
			Entry("beyond the live range but within capacity", 5),
		)

		It("reports the index and size", func() {
			_, err := list.Get(7)
			var idxErr *arraylist.IndexError
			Expect(errors.As(err, &idxErr)).To(BeTrue())
			Expect(idxErr.Index).To(Equal(7))
			Expect(idxErr.Size).To(Equal(2))
			Expect(err.Error()).To(Equal("arraylist: index 7 out of bounds for size 2"))
		})
	})

	Describe("RemoveAt", func() {
		BeforeEach(func() {
			for _, v := range []string{"a", "b", "c", "d"} {
				list.Add(v)
			}
		})

		It("returns the element and closes the gap", func() {
			v, err := list.RemoveAt(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("b"))
			Expect(contents(list)).To(Equal([]string{"a", "c", "d"}))
			Expect(list.Size()).To(Equal(3))
		})

		It("removes the last element", func() {
			v, err := list.RemoveAt(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("d"))
			Expect(contents(list)).To(Equal([]string{"a", "b", "c"}))
		})

		It("never shrinks the capacity", func() {
			for !list.IsEmpty() {
				_, err := list.RemoveAt(0)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(list.Cap()).To(Equal(arraylist.DefaultCapacity))
		})

		DescribeTable("bounds",
			func(index int) {
				_, err := list.RemoveAt(index)
				Expect(err).To(MatchError(arraylist.ErrIndexOutOfBounds))
				Expect(list.Size()).To(Equal(4))
			},
			Entry("negative", -1),
			Entry("size", 4),
		)
	})

	Describe("Remove", func() {
		It("removes the first equal element", func() {
			for _, v := range []string{"a", "b", "c", "b"} {
				list.Add(v)
			}
			v, err := list.Remove("b")
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("b"))
			Expect(contents(list)).To(Equal([]string{"a", "c", "b"}))
		})

		It("reports a missing element without changing the list", func() {
			list.Add("a")
			list.Add("b")
			_, err := list.Remove("zzz")
			Expect(err).To(MatchError(arraylist.ErrElementNotFound))
			Expect(err.Error()).To(Equal("arraylist: element not found: zzz"))
			Expect(contents(list)).To(Equal([]string{"a", "b"}))
		})

		It("does not match slots beyond the live range", func() {
			list.Add("a")
			list.Add("b")
			_, err := list.RemoveAt(1)
			Expect(err).NotTo(HaveOccurred())
			_, err = list.Remove("b")
			Expect(err).To(MatchError(arraylist.ErrElementNotFound))
		})

		It("matches a nil pointer only against a nil slot", func() {
			one := 1
			l := arraylist.New[*int]()
			l.Add(&one)
			_, err := l.Remove(nil)
			Expect(err).To(MatchError(arraylist.ErrElementNotFound))

			l.Add(nil)
			v, err := l.Remove(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNil())
			Expect(l.Size()).To(Equal(1))
		})

		It("matches pointers by pointee equality", func() {
			a, b := 7, 7
			l := arraylist.New[*int]()
			l.Add(&a)
			v, err := l.Remove(&b)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeIdenticalTo(&a))
		})

		It("removes by predicate", func() {
			list.Add("apple")
			list.Add("banana")
			v, err := list.RemoveFunc(func(s string) bool { return s[0] == 'b' })
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("banana"))
			_, err = list.RemoveFunc(func(s string) bool { return false })
			Expect(err).To(MatchError(arraylist.ErrElementNotFound))
		})
	})

	It("runs the insert/remove walkthrough", func() {
		list.Add("a")
		list.Add("b")
		list.Add("c")
		Expect(list.Insert("x", 1)).To(Succeed())
		Expect(contents(list)).To(Equal([]string{"a", "x", "b", "c"}))
		Expect(list.Size()).To(Equal(4))

		_, err := list.Remove("b")
		Expect(err).NotTo(HaveOccurred())
		Expect(contents(list)).To(Equal([]string{"a", "x", "c"}))
		Expect(list.Size()).To(Equal(3))

		_, err = list.Get(5)
		Expect(err).To(MatchError(arraylist.ErrIndexOutOfBounds))
	})

	It("tracks size across mixed operations", func() {
		expected := 0
		for i := 0; i < 30; i++ {
			switch i % 3 {
			case 0, 1:
				Expect(list.Insert(fmt.Sprint(i), list.Size()/2)).To(Succeed())
				expected++
			case 2:
				_, err := list.RemoveAt(0)
				Expect(err).NotTo(HaveOccurred())
				expected--
			}
			Expect(list.Size()).To(Equal(expected))
		}
	})
})
