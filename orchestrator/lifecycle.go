package orchestrator

// NewLifecycleRunner wires the per-tier state machines into one workflow:
// primary -> secondary -> cloud, then summary and metrics. A hard failure
// preparing a tier abandons that tier only; the failure edges jump to the
// next tier so every configured tier is always processed.
func NewLifecycleRunner(
	policies map[TierName]TierPolicy,
	counters map[TierName]Counter,
	localDeleter LocalDeleter,
	copier ArtifactCopier,
	uploader Uploader,
	remoteDeleter RemoteDeleter,
	recorder MetricsRecorder,
	logger Logger,
) *LifecycleRunner {
	preparePrimary := NewPrepareTierStep(TierPrimary, logger)
	countPrimary := NewCountStep(TierPrimary, logger)
	rotatePrimary := NewRotateLocalStep(TierPrimary, localDeleter, logger)

	prepareSecondary := NewPrepareTierStep(TierSecondary, logger)
	countSecondary := NewCountStep(TierSecondary, logger)
	copySecondary := NewCopyToSecondaryStep(copier, logger)
	rotateSecondary := NewRotateLocalStep(TierSecondary, localDeleter, logger)

	prepareCloud := NewPrepareTierStep(TierCloud, logger)
	countCloud := NewCountStep(TierCloud, logger)
	uploadCloud := NewUploadStep(uploader, logger)
	rotateCloud := NewRotateRemoteStep(remoteDeleter, logger)

	summary := NewSummaryStep(logger)
	recordMetrics := NewRecordMetricsStep(recorder, logger)

	workflow := NewWorkflow()
	workflow.StartWith(preparePrimary).OnSuccess(countPrimary).OnFailure(prepareSecondary)
	workflow.Add(countPrimary).OnSuccess(rotatePrimary)
	workflow.Add(rotatePrimary).OnSuccess(prepareSecondary)
	workflow.Add(prepareSecondary).OnSuccess(countSecondary).OnFailure(prepareCloud)
	workflow.Add(countSecondary).OnSuccess(copySecondary)
	workflow.Add(copySecondary).OnSuccess(rotateSecondary)
	workflow.Add(rotateSecondary).OnSuccess(prepareCloud)
	workflow.Add(prepareCloud).OnSuccess(countCloud).OnFailure(summary)
	workflow.Add(countCloud).OnSuccess(uploadCloud)
	workflow.Add(uploadCloud).OnSuccess(rotateCloud)
	workflow.Add(rotateCloud).OnSuccess(summary)
	workflow.Add(summary).OnSuccessOrFailure(recordMetrics)
	workflow.Add(recordMetrics)

	return &LifecycleRunner{
		workflow: workflow,
		policies: policies,
		counters: counters,
		logger:   logger,
	}
}

type LifecycleRunner struct {
	workflow *Workflow
	policies map[TierName]TierPolicy
	counters map[TierName]Counter
	logger   Logger
}

// Run executes the lifecycle for one freshly produced artifact. artifactPath
// may be empty, in which case only counting and rotation are performed.
func (r LifecycleRunner) Run(artifactPath string) (*Session, Error) {
	session := NewSession(artifactPath, r.policies, r.counters, r.logger)

	errs := r.workflow.Run(session)

	return session, errs
}
