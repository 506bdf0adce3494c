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

// Package flowexec provides the service and HTTP handler that run authentication trees for clients.
package flowexec

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/asgardeo/authtree/internal/authtree/constants"
	"github.com/asgardeo/authtree/internal/authtree/engine"
	"github.com/asgardeo/authtree/internal/authtree/model"
	"github.com/asgardeo/authtree/internal/authtree/session"
	"github.com/asgardeo/authtree/internal/authtree/store"
	"github.com/asgardeo/authtree/internal/authtree/tree"
	"github.com/asgardeo/authtree/internal/system/error/serviceerror"
	"github.com/asgardeo/authtree/internal/system/log"
	"github.com/asgardeo/authtree/internal/system/metrics"
	sysutils "github.com/asgardeo/authtree/internal/system/utils"
)

const (
	loggerComponentName = "FlowExecService"
	failureReasonFalse  = "Authentication failed"
	resumeTokenParam    = "token"
)

// FlowExecServiceInterface runs authentication trees on behalf of clients.
type FlowExecServiceInterface interface {
	Execute(ctx context.Context, flowR *FlowRequest, request model.RequestMetadata) (
		*FlowStep, *serviceerror.ServiceError)
	Resume(ctx context.Context, token string, request model.RequestMetadata) (
		*FlowStep, *serviceerror.ServiceError)
}

// Options holds the settings of the flow execution service.
type Options struct {
	// DefaultMaxDuration bounds a flow whose tree declares no maximum duration.
	DefaultMaxDuration time.Duration
	// ResumeBaseURL is the URL resume tokens are appended to when building resume links.
	ResumeBaseURL string
}

// flowExecService is the implementation of FlowExecServiceInterface.
type flowExecService struct {
	trees     tree.ProviderInterface
	evaluator engine.TreeEvaluatorInterface
	snapshots store.FlowSnapshotStoreInterface
	sessions  session.ServiceInterface
	tokens    ResumeTokenManagerInterface
	metrics   metrics.CollectorInterface
	options   Options
	now       func() time.Time
	logger    *log.Logger
}

// NewFlowExecService creates the flow execution service.
func NewFlowExecService(trees tree.ProviderInterface, evaluator engine.TreeEvaluatorInterface,
	snapshots store.FlowSnapshotStoreInterface, sessions session.ServiceInterface,
	tokens ResumeTokenManagerInterface, collector metrics.CollectorInterface,
	options Options) FlowExecServiceInterface {
	if collector == nil {
		collector = metrics.NoopCollector{}
	}
	if options.DefaultMaxDuration <= 0 {
		options.DefaultMaxDuration = 5 * time.Minute
	}
	return &flowExecService{
		trees:     trees,
		evaluator: evaluator,
		snapshots: snapshots,
		sessions:  sessions,
		tokens:    tokens,
		metrics:   collector,
		options:   options,
		now:       time.Now,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// flowRun is a single evaluation of a flow, either new or loaded from its snapshot.
type flowRun struct {
	flowID    string
	realm     string
	treeName  string
	snapshot  *store.FlowSnapshot
	callbacks []model.Callback
	resuming  bool
	startedAt time.Time
	request   model.RequestMetadata
}

// Execute starts a new flow when the request carries no flow id, and continues the flow with
// the submitted callbacks otherwise.
func (s *flowExecService) Execute(ctx context.Context, flowR *FlowRequest, request model.RequestMetadata) (
	*FlowStep, *serviceerror.ServiceError) {
	var run *flowRun
	var svcErr *serviceerror.ServiceError
	if flowR.FlowID == "" {
		run, svcErr = s.newRun(flowR)
	} else {
		run, svcErr = s.loadRun(flowR.FlowID)
		if svcErr == nil && run.snapshot.IsSuspended() {
			svcErr = &constants.ErrorFlowSuspended
		}
	}
	if svcErr != nil {
		return nil, svcErr
	}

	run.callbacks = flowR.Callbacks
	run.request = request
	return s.run(ctx, run)
}

// Resume continues a suspended flow through the token of its resume link.
func (s *flowExecService) Resume(ctx context.Context, token string, request model.RequestMetadata) (
	*FlowStep, *serviceerror.ServiceError) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		s.logger.Debug("Rejected resume token", log.Error(err))
		return nil, &constants.ErrorInvalidResumeToken
	}

	run, svcErr := s.loadRun(claims.FlowID)
	if svcErr != nil {
		return nil, svcErr
	}
	if !run.snapshot.IsSuspended() || run.snapshot.SuspensionID != claims.SuspensionID {
		return nil, &constants.ErrorFlowNotSuspended
	}

	request.SuspensionID = claims.SuspensionID
	run.request = request
	run.resuming = true
	run.startedAt = s.now()
	return s.run(ctx, run)
}

func (s *flowExecService) newRun(flowR *FlowRequest) (*flowRun, *serviceerror.ServiceError) {
	if flowR.TreeName == "" {
		return nil, &constants.ErrorMissingTreeName
	}
	realm := flowR.Realm
	if realm == "" {
		realm = constants.DefaultRealm
	}
	if _, err := s.trees.GetTree(realm, flowR.TreeName); err != nil {
		if errors.Is(err, constants.ErrTreeNotFound) {
			return nil, &constants.ErrorInvalidTree
		}
		s.logger.Error("Failed to resolve tree", log.String(log.LoggerKeyRealm, realm),
			log.String(log.LoggerKeyTreeName, flowR.TreeName), log.Error(err))
		return nil, &constants.ErrorFlowExecution
	}

	return &flowRun{
		flowID:    sysutils.GenerateUUID(),
		realm:     realm,
		treeName:  flowR.TreeName,
		startedAt: s.now(),
	}, nil
}

func (s *flowExecService) loadRun(flowID string) (*flowRun, *serviceerror.ServiceError) {
	logger := s.logger.With(log.String(log.LoggerKeyFlowID, flowID))

	snapshot, err := s.snapshots.GetSnapshot(flowID)
	if err != nil {
		if errors.Is(err, store.ErrFlowSnapshotNotFound) {
			return nil, &constants.ErrorInvalidFlowID
		}
		logger.Error("Failed to load flow snapshot", log.Error(err))
		return nil, &constants.ErrorFlowPersistence
	}

	if snapshot.IsExpired(s.now()) {
		logger.Debug("Flow expired")
		s.removeSnapshot(flowID, logger)
		s.metrics.ObserveFlow("EXPIRED")
		return nil, &constants.ErrorFlowExpired
	}

	return &flowRun{
		flowID:    flowID,
		realm:     snapshot.Realm,
		treeName:  snapshot.TreeName,
		snapshot:  snapshot,
		startedAt: snapshot.ExpiresAt.Add(-snapshot.State.MaxTreeDuration),
	}, nil
}

// run evaluates the tree and persists, suspends, or completes the flow depending on the result.
func (s *flowExecService) run(ctx context.Context, run *flowRun) (*FlowStep, *serviceerror.ServiceError) {
	logger := s.logger.With(log.String(log.LoggerKeyFlowID, run.flowID),
		log.String(log.LoggerKeyRealm, run.realm), log.String(log.LoggerKeyTreeName, run.treeName))

	var state *model.TreeExecutionState
	if run.snapshot != nil {
		state = run.snapshot.State
	}

	result, err := s.evaluator.Evaluate(run.realm, run.treeName, state, run.callbacks, run.resuming, run.request)
	if err != nil {
		logger.Error("Tree evaluation failed", log.Error(err))
		s.metrics.ObserveFlow("ERROR")
		if run.snapshot != nil {
			s.removeSnapshot(run.flowID, logger)
		}
		if errors.Is(err, constants.ErrTreeNotFound) {
			return nil, &constants.ErrorInvalidTree
		}
		return nil, &constants.ErrorFlowExecution
	}
	s.metrics.ObserveFlow(string(result.Status))

	step := &FlowStep{
		FlowID:      run.flowID,
		Realm:       run.realm,
		TreeName:    run.treeName,
		Header:      result.Header,
		Description: result.Description,
		Stage:       result.Stage,
	}

	switch result.Status {
	case model.TreeStatusNeedsInput:
		if svcErr := s.persist(run, result, "", s.expiresAt(run, result), logger); svcErr != nil {
			return nil, svcErr
		}
		step.Status = FlowStatusIncomplete
		step.Callbacks = result.Callbacks
		return step, nil
	case model.TreeStatusSuspended:
		return s.suspend(run, result, step, logger)
	case model.TreeStatusTrue:
		if run.snapshot != nil {
			s.removeSnapshot(run.flowID, logger)
		}
		if len(result.State.Webhooks) > 0 {
			logger.Debug("Flow completed with webhooks", log.Any("webhooks", result.State.Webhooks))
		}
		sess, err := s.sessions.CreateSession(ctx, run.realm, run.treeName, result)
		if err != nil {
			logger.Error("Failed to create session", log.Error(err))
			return nil, &constants.ErrorSessionCreation
		}
		logger.Debug("Flow completed successfully")
		step.Status = FlowStatusComplete
		step.SessionID = sess.ID
		return step, nil
	default:
		if run.snapshot != nil {
			s.removeSnapshot(run.flowID, logger)
		}
		logger.Debug("Flow completed with failure")
		step.Status = FlowStatusFailed
		step.FailureReason = failureReasonFalse
		return step, nil
	}
}

// suspend issues a resume link, asks the suspending node for the prompts shown meanwhile, and
// persists the flow until the link is used or expires.
func (s *flowExecService) suspend(run *flowRun, result *model.TreeResult, step *FlowStep,
	logger *log.Logger) (*FlowStep, *serviceerror.ServiceError) {
	duration := time.Duration(constants.DefaultSuspendDurationMinutes) * time.Minute
	var handler model.SuspensionHandler
	if result.Suspension != nil {
		if result.Suspension.Duration > 0 {
			duration = result.Suspension.Duration
		}
		handler = result.Suspension.Handler
	}

	suspensionID := sysutils.GenerateUUID()
	expiresAt := s.now().Add(duration)
	token, err := s.tokens.IssueToken(run.flowID, suspensionID, expiresAt)
	if err != nil {
		logger.Error("Failed to issue resume token", log.Error(err))
		return nil, &constants.ErrorResumeTokenIssue
	}

	var callbacks []model.Callback
	if handler != nil {
		callbacks, err = handler(s.resumeURI(token))
		if err != nil {
			logger.Error("Suspension handler failed", log.Error(err))
			s.metrics.ObserveFlow("ERROR")
			if run.snapshot != nil {
				s.removeSnapshot(run.flowID, logger)
			}
			return nil, &constants.ErrorFlowExecution
		}
	}

	if svcErr := s.persist(run, result, suspensionID, expiresAt, logger); svcErr != nil {
		return nil, svcErr
	}
	logger.Debug("Flow suspended", log.String("expiresAt", expiresAt.Format(time.RFC3339)))
	step.Status = FlowStatusSuspended
	step.Callbacks = callbacks
	return step, nil
}

// persist creates the snapshot of a new flow or updates the snapshot of a continued one.
func (s *flowExecService) persist(run *flowRun, result *model.TreeResult, suspensionID string,
	expiresAt time.Time, logger *log.Logger) *serviceerror.ServiceError {
	snapshot := &store.FlowSnapshot{
		FlowID:       run.flowID,
		Realm:        run.realm,
		TreeName:     run.treeName,
		State:        result.State,
		SuspensionID: suspensionID,
		ExpiresAt:    expiresAt,
	}

	var err error
	if run.snapshot == nil {
		err = s.snapshots.CreateSnapshot(snapshot)
	} else {
		err = s.snapshots.UpdateSnapshot(snapshot)
	}
	if err != nil {
		logger.Error("Failed to persist flow snapshot", log.Error(err))
		return &constants.ErrorFlowPersistence
	}
	return nil
}

// expiresAt is the end of the flow lifetime, measured from the start of the flow or from its
// latest resumption.
func (s *flowExecService) expiresAt(run *flowRun, result *model.TreeResult) time.Time {
	maxDuration := result.State.MaxTreeDuration
	if maxDuration <= 0 {
		maxDuration = s.options.DefaultMaxDuration
		result.State.MaxTreeDuration = maxDuration
	}
	return run.startedAt.Add(maxDuration)
}

func (s *flowExecService) resumeURI(token string) string {
	query := url.Values{}
	query.Set(resumeTokenParam, token)
	return s.options.ResumeBaseURL + "?" + query.Encode()
}

func (s *flowExecService) removeSnapshot(flowID string, logger *log.Logger) {
	if err := s.snapshots.DeleteSnapshot(flowID); err != nil {
		logger.Error("Failed to remove flow snapshot", log.Error(err))
	}
}
