// bgs-list prints the registered background subtraction algorithms and
// their current parameter sets.
package main

import (
	"fmt"
	"sort"

	"bgslib/bgs/subtraction"
	"bgslib/internal/logger"
)

func main() {
	log := logger.NewConsole(logger.LevelFromEnv())
	registry := subtraction.NewRegistry(log)

	names := registry.Names()
	sort.Strings(names)

	fmt.Println("Registered background subtraction algorithms:")
	for _, name := range names {
		algorithm, err := registry.Create(name)
		if err != nil {
			log.Fatal().Err(err).Str("algorithm", name).Msg("create failed")
		}

		fmt.Printf("  %s\n", name)

		params := algorithm.Params()
		keys := make([]string, 0, len(params))
		for key := range params {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("    %s = %s\n", key, params[key])
		}

		algorithm.Close()
	}
}
