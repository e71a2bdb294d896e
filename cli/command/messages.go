package command

const rotateSigintQuestion = "Stopping a rotation can leave partially copied artifacts behind. Are you sure you want to cancel? [yes/no]"
const rotateStdinErrorMessage = "Couldn't read from Stdin, if you still want to stop the rotation send SIGTERM."
const rotateCancelledNotice = "Rotation cancelled. Partially copied artifacts in the secondary tier should be removed before the next run."

const uploadSigintQuestion = "Stopping an upload can leave a partial object in the cloud tier. Are you sure you want to cancel? [yes/no]"
const uploadStdinErrorMessage = "Couldn't read from Stdin, if you still want to stop the upload send SIGTERM."
const uploadCancelledNotice = "Upload cancelled. The remote copy may be incomplete and should not be trusted without verification."
