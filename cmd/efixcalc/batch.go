package main

import "context"
import "fmt"
import "os"

import "github.com/cespare/xxhash/v2"
import "golang.org/x/sync/errgroup"
import "gopkg.in/yaml.v3"

// batchFile is the YAML layout for the batch subcommand:
//   width: 128
//   jobs:
//     - op: mul
//       args: ["1.5", "-2"]
//     - op: sqrt
//       args: ["2"]
type batchFile struct {
	Width int   `yaml:"width"`
	Jobs  []job `yaml:"jobs"`
}

type job struct {
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
}

func loadBatch(filename string) (batchFile, error) {
	var batch batchFile
	data, err := os.ReadFile(filename)
	if err != nil { return batch, err }
	err = yaml.Unmarshal(data, &batch)
	if err != nil { return batch, fmt.Errorf("batch %s: %w", filename, err) }
	return batch, nil
}

// runBatch evaluates the jobs concurrently and returns the results in
// input order, together with a checksum of their raw bits. The checksum
// doesn't depend on the number of workers.
func runBatch(ctx context.Context, calc calculator, jobs []job, workers int) ([]result, uint64, error) {
	results := make([]result, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, job := range jobs {
		group.Go(func() error {
			if ctx.Err() != nil { return ctx.Err() }
			res, err := calc.Eval(job.Op, job.Args)
			if err != nil { return fmt.Errorf("job #%d: %w", i, err) }
			results[i] = res
			return nil
		})
	}
	err := group.Wait()
	if err != nil { return nil, 0, err }

	digest := xxhash.New()
	for _, res := range results {
		if res.Bits == nil {
			_, _ = digest.Write([]byte{ 0 })
		} else {
			_, _ = digest.Write(res.Bits)
		}
	}
	return results, digest.Sum64(), nil
}
