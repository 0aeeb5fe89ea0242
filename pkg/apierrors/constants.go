package apierrors

const (
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgFailListTasks       = "failListTasks"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailReorderTasks    = "failReorderTasks"
	MsgFailListCategories  = "failListCategories"
	MsgFailCreateCategory  = "failCreateCategory"
	MsgFailViews           = "failViews"
	MsgFailViewMode        = "failViewMode"
	MsgFailSettings        = "failSettings"
	MsgMissingAPIKey       = "missingApiKey"
	MsgGenerationFailed    = "generationFailed"
	MsgDecomposeBusy       = "decomposeBusy"
	MsgSyncBusy            = "syncBusy"
	MsgSyncFailed          = "syncFailed"
	MsgNoTaskList          = "noTaskList"
	MsgRemoteAuth          = "remoteAuthRequired"
	MsgMissingClientID     = "missingClientId"
)
