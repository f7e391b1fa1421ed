package cli

const asciiLogo = ` _                       __       _ _
| |_ ___ _ __ _ __ ___  / _| ___ | (_) ___
| __/ _ \ '__| '_ ` + "`" + ` _ \| |_ / _ \| | |/ _ \
| ||  __/ |  | | | | | |  _| (_) | | | (_) |
 \__\___|_|  |_| |_| |_|_|  \___/|_|_|\___/`
