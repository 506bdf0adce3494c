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
	"time"

	"github.com/robfig/cron/v3"

	"github.com/asgardeo/authtree/internal/authtree/store"
	"github.com/asgardeo/authtree/internal/system/log"
)

// snapshotPurger periodically removes the snapshots of abandoned flows.
type snapshotPurger struct {
	snapshots store.FlowSnapshotStoreInterface
	scheduler *cron.Cron
	now       func() time.Time
	logger    *log.Logger
}

func newSnapshotPurger(snapshots store.FlowSnapshotStoreInterface) *snapshotPurger {
	return &snapshotPurger{
		snapshots: snapshots,
		scheduler: cron.New(),
		now:       time.Now,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SnapshotPurger")),
	}
}

// start schedules the purge with a cron expression or descriptor such as "@every 5m".
func (p *snapshotPurger) start(schedule string) error {
	if _, err := p.scheduler.AddFunc(schedule, p.purge); err != nil {
		return fmt.Errorf("invalid snapshot purge schedule %q: %w", schedule, err)
	}
	p.scheduler.Start()
	p.logger.Debug("Snapshot purge scheduled", log.String("schedule", schedule))
	return nil
}

func (p *snapshotPurger) stop() {
	<-p.scheduler.Stop().Done()
}

func (p *snapshotPurger) purge() {
	count, err := p.snapshots.DeleteExpired(p.now())
	if err != nil {
		p.logger.Error("Failed to purge expired flow snapshots", log.Error(err))
		return
	}
	if count > 0 {
		p.logger.Info("Purged expired flow snapshots", log.Int("count", int(count)))
	}
}
