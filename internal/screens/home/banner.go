package home

// banner is the home screen title art.
const banner = `
 ██████╗ ██████╗  ██████╗ ██╗    ██╗██╗      █████╗ ██████╗
██╔════╝ ██╔══██╗██╔═══██╗██║    ██║██║     ██╔══██╗██╔══██╗
██║  ███╗██████╔╝██║   ██║██║ █╗ ██║██║     ███████║██████╔╝
██║   ██║██╔══██╗██║   ██║██║███╗██║██║     ██╔══██║██╔══██╗
╚██████╔╝██║  ██║╚██████╔╝╚███╔███╔╝███████╗██║  ██║██████╔╝
 ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚══╝╚══╝ ╚══════╝╚═╝  ╚═╝╚═════╝`
