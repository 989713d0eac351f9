/*
   Copyright 2024 Arbor Labs

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/arborlabs/arbor/log"
	"github.com/arborlabs/arbor/metrics"
	"github.com/arborlabs/arbor/tree"
	"github.com/arborlabs/arbor/tree/binary"
)

func newTreeCommand() *cobra.Command {

	var order string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build the demo world tree and print one of its traversals",
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics.Register(nil)

			t, err := buildWorldTree()
			if err != nil {
				return err
			}

			var it *tree.Iterator
			switch order {
			case "preorder":
				it = tree.PreOrder(t)
			case "postorder":
				it = tree.PostOrder(t)
			case "inorder":
				it = t.InOrder()
			case "breadthfirst":
				it = tree.BreadthFirst(t)
			default:
				return fmt.Errorf("unknown traversal order %q", order)
			}

			for p, ok := it.Next(); ok; p, ok = it.Next() {
				fmt.Println(p.Element())
			}

			height, err := tree.Height(t, nil)
			if err != nil {
				return err
			}
			log.Infof("world tree holds %d positions, height %d", t.Len(), height)

			if metricsAddr != "" {
				log.Infof("exposing metrics on %s", metricsAddr)
				return http.ListenAndServe(metricsAddr, promhttp.Handler())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&order, "order", "inorder", "Traversal order: preorder, postorder, inorder or breadthfirst")
	f.StringVar(&metricsAddr, "metrics-addr", "", "Expose prometheus metrics on this address and keep running")

	return cmd
}

// buildWorldTree assembles the partial model of the universe used by
// the demos.
func buildWorldTree() (*binary.LinkedBinaryTree, error) {
	t := binary.NewLinkedBinaryTree()

	root, err := t.AddRoot("world")
	if err != nil {
		return nil, err
	}
	if _, err = t.AddLeft(root, "mars"); err != nil {
		return nil, err
	}
	earth, err := t.AddRight(root, "earth")
	if err != nil {
		return nil, err
	}
	africa, err := t.AddLeft(earth, "africa")
	if err != nil {
		return nil, err
	}
	europe, err := t.AddRight(earth, "europe")
	if err != nil {
		return nil, err
	}
	if _, err = t.AddLeft(africa, "west africa"); err != nil {
		return nil, err
	}
	if _, err = t.AddRight(africa, "east africa"); err != nil {
		return nil, err
	}
	if _, err = t.AddLeft(europe, "south europe"); err != nil {
		return nil, err
	}
	if _, err = t.AddRight(europe, "west europe"); err != nil {
		return nil, err
	}
	return t, nil
}
