package commands

const (
	_etc = "/usr/local/etc/rollcall"
	_var = "/usr/local/var/rollcall"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)
