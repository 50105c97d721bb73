/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package utils

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// SetupElegantExit returns a channel that is closed on SIGINT/SIGTERM,
// so long-running loops (a 100k-address benchmark sweep, for instance)
// can stop cleanly instead of dying mid-write.
func SetupElegantExit() <-chan struct{} {
	log.Debugf("entering SetupElegantExit")
	exitChan := make(chan struct{})
	exitSigChan := make(chan os.Signal, 1)
	signal.Notify(exitSigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSigChan
		log.Debugf("received exit signal = %v", sig)
		close(exitChan)
	}()
	return exitChan
}
