package cli

const asciiLogo = `       __     _
__   _/ _|___| |__
\ \ / / |_/ __| '_ \
 \ V /|  _\__ \ | | |
  \_/ |_| |___/_| |_|`
