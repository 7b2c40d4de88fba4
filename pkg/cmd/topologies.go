// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/consensys/go-z80asm/pkg/mem"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var topologiesCmd = &cobra.Command{
	Use:   "topologies",
	Short: "list the supported memory topologies.",
	Long: `List every memory topology the assembler can target, along with its page
	 count, backing store size and reset paging state.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		reset := GetFlag(cmd, "reset-state")
		//
		for _, topology := range mem.Topologies() {
			if topology.Pages == 0 {
				fmt.Printf("%-15s flat, %d bytes\n", topology.Name, topology.BackingSize())
			} else {
				fmt.Printf("%-15s %d pages of %d bytes, %d bytes\n", topology.Name,
					topology.Pages, mem.PageSize, topology.BackingSize())
			}
			//
			if reset && topology.Pages != 0 {
				printResetState(topology.Name)
			}
		}
	},
}

// Print the reset paging state of a given banked topology, as a freshly
// selected address space reports it.
func printResetState(name string) {
	registry := mem.NewRegistry()
	//
	if err := registry.SelectTopology(name); err != nil {
		fmt.Println(err)
		return
	}
	//
	for slot := 0; slot < registry.SlotCount(); slot++ {
		current := " "
		if slot == registry.DefaultSlot() {
			current = "*"
		}
		//
		fmt.Printf("  %s slot %d: page %d\n", current, slot, registry.PageInSlot(slot))
	}
}

func init() {
	rootCmd.AddCommand(topologiesCmd)
	topologiesCmd.Flags().Bool("reset-state", false, "show the reset slot-to-page mapping")
}
