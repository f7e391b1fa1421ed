package session

// Banner is emitted once by Start unless disabled.
const Banner = `<span class="welcome-banner">
 _                       __       _ _
| |_ ___ _ __ _ __ ___  / _| ___ | (_) ___
| __/ _ \ '__| '_ ` + "`" + ` _ \| |_ / _ \| | |/ _ \
| ||  __/ |  | | | | | |  _| (_) | | | (_) |
 \__\___|_|  |_| |_| |_|_|  \___/|_|_|\___/
</span>
<span class="info">Welcome to my terminal portfolio!</span>

Type <span class="success">help</span> to see available commands.
Try <span class="success">ls</span> to see files, or <span class="success">cat about.md</span> to learn about me.`
