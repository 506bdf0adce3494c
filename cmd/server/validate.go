/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configured trees",
	Long:  `Loads the configured trees and checks every node configuration and connection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		rt, err := newTreeRuntime(cfg, nil, nil)
		if err != nil {
			return err
		}
		if err := rt.validate(); err != nil {
			return err
		}

		trees := rt.trees.GetTrees()
		for _, t := range trees {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s/%s (%d nodes)\n", t.Realm, t.Name, len(t.Nodes))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d trees valid\n", len(trees))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
