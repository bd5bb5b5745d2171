// Command measure shows how the insertion order shapes an unbalanced TreeSet:
// random insertion keeps the height near 2*ln(n), sorted insertion makes it n.
package main

import (
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"

	"github.com/g-m-twostay/go-treeset/Sets/TreeSet"
)

type args struct {
	Size    int    `arg:"-n,--size" default:"20000" help:"number of elements added"`
	Lookups int    `arg:"-l,--lookups" default:"20000" help:"Contains calls per benchmark round"`
	Seed    int64  `arg:"--seed" default:"0" help:"seed of the random insertion order"`
	Orders  string `arg:"--orders" default:"random,sorted" help:"comma separated insertion orders: random, sorted, reversed"`
	Verbose bool   `arg:"-v,--verbose" help:"log every step"`
}

func (args) Description() string {
	return "measure builds a TreeSet in each insertion order and reports its height and speed"
}

var orders = map[string]func(n int, rg *rand.Rand) []int{
	"random": func(n int, rg *rand.Rand) []int {
		return rg.Perm(n)
	},
	"sorted": func(n int, _ *rand.Rand) []int {
		vs := make([]int, n)
		for i := range vs {
			vs[i] = i
		}
		return vs
	},
	"reversed": func(n int, _ *rand.Rand) []int {
		vs := make([]int, n)
		for i := range vs {
			vs[i] = n - 1 - i
		}
		return vs
	},
}

type result struct {
	order   string
	height  int
	build   time.Duration
	nsPerOp float64
}

func measure(a *args, order string, gen func(int, *rand.Rand) []int) result {
	vs := gen(a.Size, rand.New(rand.NewSource(a.Seed)))
	s := TreeSet.New[int]()
	start := time.Now()
	s.AddAll(vs...)
	r := result{order: order, build: time.Since(start), height: s.Height()}
	log.WithFields(log.Fields{"order": order, "height": r.height, "build": r.build}).Debug("built")

	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			for i := range a.Lookups {
				if !s.Contains(vs[i%len(vs)]) {
					b.Fatalf("lost element %d", vs[i%len(vs)])
				}
			}
		}
	})
	r.nsPerOp = float64(br.NsPerOp()) / float64(a.Lookups)
	log.WithFields(log.Fields{"order": order, "rounds": br.N}).Debug("looked up")
	return r
}

func main() {
	testing.Init()
	a := args{}
	p := arg.MustParse(&a)
	if a.Size <= 0 || a.Lookups <= 0 {
		p.Fail("--size and --lookups must be positive")
	}
	if a.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var rs []result
	for _, o := range strings.Split(a.Orders, ",") {
		o = strings.TrimSpace(o)
		gen, ok := orders[o]
		if !ok {
			log.WithField("order", o).Warn("unknown insertion order, skipped")
			continue
		}
		log.WithFields(log.Fields{"order": o, "size": a.Size}).Info("measuring")
		rs = append(rs, measure(&a, o, gen))
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"order", "size", "height", "build", "ns/lookup"})
	for _, r := range rs {
		t.AppendRow(table.Row{r.order, a.Size, r.height, r.build.Round(time.Microsecond), r.nsPerOp})
	}
	t.Render()
}
