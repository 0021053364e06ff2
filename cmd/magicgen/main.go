// magicgen searches magic multipliers for a seed, validates them and stores
// or prints the result.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/chessattacks/internal/attack"
	"github.com/hailam/chessattacks/internal/storage"
)

var (
	seed       = flag.Int64("seed", attack.DefaultSeed, "search seed")
	dbDir      = flag.String("db", "", "store the result in this directory (\"default\" for the platform data dir)")
	goOut      = flag.String("go", "", "write the multipliers as Go source to file")
	goPkg      = flag.String("pkg", "magics", "package name for -go output")
	list       = flag.Bool("list", false, "list stored seeds and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", *cpuprofile)
	}

	var store *storage.Storage
	if *dbDir != "" {
		var err error
		if *dbDir == "default" {
			store, err = storage.OpenDefault()
		} else {
			store, err = storage.Open(*dbDir)
		}
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
	}

	if *list {
		if store == nil {
			log.Fatal("-list needs -db")
		}
		seeds, err := store.ListSeeds()
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range seeds {
			fmt.Println(s)
		}
		return
	}

	start := time.Now()
	ms, err := attack.SearchMagics(*seed)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)
	log.Printf("Search for seed %d took %v", *seed, elapsed)

	if err := ms.Validate(); err != nil {
		log.Fatalf("search produced a bad set: %v", err)
	}

	if store != nil {
		rec := &storage.Record{Magics: *ms, Validated: true, Elapsed: elapsed}
		if err := store.SaveMagics(rec); err != nil {
			log.Fatal(err)
		}
		log.Printf("Stored seed %d", *seed)
	}

	if *goOut != "" {
		src, err := goSource(*goPkg, ms)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*goOut, src, 0644); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", *goOut)
	}

	if store == nil && *goOut == "" {
		printSet(ms)
	}
}

// goSource renders ms as a gofmt'ed Go file declaring Magics.
func goSource(pkg string, ms *attack.MagicSet) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by magicgen -seed %d; DO NOT EDIT.\n\n", ms.Seed)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/hailam/chessattacks/internal/attack\"\n\n")
	fmt.Fprintf(&buf, "// Magics is a validated multiplier set.\n")
	fmt.Fprintf(&buf, "var Magics = attack.MagicSet{\n\tSeed: %d,\n", ms.Seed)
	writeArray(&buf, "Bishop", &ms.Bishop)
	writeArray(&buf, "Rook", &ms.Rook)
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}

func writeArray(buf *bytes.Buffer, name string, magics *[64]uint64) {
	fmt.Fprintf(buf, "\t%s: [64]uint64{\n", name)
	for i, m := range magics {
		if i%4 == 0 {
			buf.WriteString("\t\t")
		}
		fmt.Fprintf(buf, "%#016x,", m)
		if i%4 == 3 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("\t},\n")
}

func printSet(ms *attack.MagicSet) {
	fmt.Printf("seed %d\n", ms.Seed)
	for sq := 0; sq < 64; sq++ {
		fmt.Printf("%2d  bishop %#016x  rook %#016x\n", sq, ms.Bishop[sq], ms.Rook[sq])
	}
}
