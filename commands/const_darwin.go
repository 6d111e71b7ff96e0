package commands

const (
	_etc = "/usr/local/etc/com.github.rollcall"
	_var = "/usr/local/var/com.github.rollcall"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)
