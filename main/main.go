package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixtext"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	sources := [][]byte{
		[]byte("orders/2024/eu-west-1"),
		[]byte("sessions/hot"),
		[]byte("node-17"),
		nil,
	}
	keys := make([]fixtext.Text32, 1024)
	probe := fixtext.ViewOfString("node-17")
	hits := 0
	for i := 0; i < 10000; i++ {
		for j := range keys {
			keys[j].Assign(sources[j%len(sources)])
			if keys[j].EqualView(probe) {
				hits++
			}
		}
	}
	log.Printf("hits: %d", hits)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
